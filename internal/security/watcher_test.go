package security

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riftboard/internal/config"
)

func testConfig() config.SecurityConfig {
	return config.SecurityConfig{
		BanThreshold:    2,
		KickThreshold:   2,
		DeleteThreshold: 2,
		Window:          5 * time.Minute,
	}
}

// fakeMod serves a scripted audit log and records ban calls.
type fakeMod struct {
	entries map[string]string // targetID -> actorID
	freshID bool
	auditErr error
	banErr   error
	bans     []string
}

func snowflakeAt(t time.Time) string {
	const discordEpoch = 1420070400000
	ms := t.UnixNano() / int64(time.Millisecond)
	return strconv.FormatInt((ms-discordEpoch)<<22, 10)
}

func (f *fakeMod) GuildAuditLog(guildID, userID, beforeID string, actionType, limit int, options ...discordgo.RequestOption) (*discordgo.GuildAuditLog, error) {
	if f.auditErr != nil {
		return nil, f.auditErr
	}
	out := &discordgo.GuildAuditLog{}
	for target, actor := range f.entries {
		id := snowflakeAt(time.Now())
		if !f.freshID {
			id = snowflakeAt(time.Now().Add(-time.Hour))
		}
		out.AuditLogEntries = append(out.AuditLogEntries, &discordgo.AuditLogEntry{
			ID:       id,
			TargetID: target,
			UserID:   actor,
		})
	}
	return out, nil
}

func (f *fakeMod) GuildBanCreateWithReason(guildID, userID, reason string, days int, options ...discordgo.RequestOption) error {
	f.bans = append(f.bans, userID)
	return f.banErr
}

func newTestWatcher(mod *fakeMod) (*Watcher, *[]string) {
	var alerts []string
	w := NewWatcher(testConfig(), mod, "bot-id", func(content string) {
		alerts = append(alerts, content)
	})
	return w, &alerts
}

func TestTrackerSlidingWindow(t *testing.T) {
	tr := NewTracker(5 * time.Minute)
	now := time.Now()
	tr.now = func() time.Time { return now }

	assert.Equal(t, 1, tr.Record("mod", ActionBan))
	assert.Equal(t, 2, tr.Record("mod", ActionBan))

	// Kinds are counted independently.
	assert.Equal(t, 1, tr.Record("mod", ActionKick))

	// Outside the window everything expires.
	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, tr.Record("mod", ActionBan))
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(5 * time.Minute)
	tr.Record("mod", ActionBan)
	tr.Record("mod", ActionKick)
	tr.Record("other", ActionBan)
	tr.Reset("mod")

	assert.Equal(t, 1, tr.Record("mod", ActionBan))
	assert.Equal(t, 2, tr.Record("other", ActionBan))
}

func TestWatcherBansBurstingActor(t *testing.T) {
	mod := &fakeMod{entries: map[string]string{
		"victim-1": "rogue",
		"victim-2": "rogue",
	}}
	w, alerts := newTestWatcher(mod)

	w.HandleBanAdd("guild", "victim-1")
	assert.Empty(t, mod.bans)

	w.HandleBanAdd("guild", "victim-2")
	require.Equal(t, []string{"rogue"}, mod.bans)
	require.Len(t, *alerts, 1)
	assert.Contains(t, (*alerts)[0], "<@rogue>")
	assert.Contains(t, (*alerts)[0], "SECURITY ALERT")
}

func TestWatcherBansOncePerActor(t *testing.T) {
	mod := &fakeMod{entries: map[string]string{}}
	for i := 0; i < 5; i++ {
		mod.entries[fmt.Sprintf("victim-%d", i)] = "rogue"
	}
	w, alerts := newTestWatcher(mod)

	for i := 0; i < 5; i++ {
		w.HandleBanAdd("guild", fmt.Sprintf("victim-%d", i))
	}
	assert.Equal(t, []string{"rogue"}, mod.bans)
	assert.Len(t, *alerts, 1)
}

func TestWatcherIgnoresItself(t *testing.T) {
	mod := &fakeMod{entries: map[string]string{
		"victim-1": "bot-id",
		"victim-2": "bot-id",
	}}
	w, alerts := newTestWatcher(mod)

	w.HandleBanAdd("guild", "victim-1")
	w.HandleBanAdd("guild", "victim-2")
	assert.Empty(t, mod.bans)
	assert.Empty(t, *alerts)
}

func TestWatcherIgnoresVoluntaryLeaves(t *testing.T) {
	// Stale kick audit entries mean the member left on their own.
	mod := &fakeMod{entries: map[string]string{
		"leaver-1": "rogue",
		"leaver-2": "rogue",
	}, freshID: false}
	w, _ := newTestWatcher(mod)

	w.HandleMemberRemove("guild", "leaver-1")
	w.HandleMemberRemove("guild", "leaver-2")
	assert.Empty(t, mod.bans)
}

func TestWatcherCountsFreshKicks(t *testing.T) {
	mod := &fakeMod{entries: map[string]string{
		"victim-1": "rogue",
		"victim-2": "rogue",
	}, freshID: true}
	w, _ := newTestWatcher(mod)

	w.HandleMemberRemove("guild", "victim-1")
	w.HandleMemberRemove("guild", "victim-2")
	assert.Equal(t, []string{"rogue"}, mod.bans)
}

func TestWatcherChannelDeleteBurst(t *testing.T) {
	mod := &fakeMod{entries: map[string]string{
		"chan-1": "rogue",
		"chan-2": "rogue",
	}}
	w, _ := newTestWatcher(mod)

	w.HandleChannelDelete("guild", "chan-1")
	w.HandleChannelDelete("guild", "chan-2")
	assert.Equal(t, []string{"rogue"}, mod.bans)
}

func TestWatcherAlertsEvenWhenBanFails(t *testing.T) {
	mod := &fakeMod{entries: map[string]string{
		"victim-1": "rogue",
		"victim-2": "rogue",
	}, banErr: errors.New("missing permissions")}
	w, alerts := newTestWatcher(mod)

	w.HandleBanAdd("guild", "victim-1")
	w.HandleBanAdd("guild", "victim-2")
	assert.Len(t, *alerts, 1)
}

func TestWatcherToleratesAuditFailure(t *testing.T) {
	mod := &fakeMod{auditErr: errors.New("403")}
	w, _ := newTestWatcher(mod)

	w.HandleBanAdd("guild", "victim-1")
	assert.Empty(t, mod.bans)
}
