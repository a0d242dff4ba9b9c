// Package security watches for moderation bursts: a compromised or
// rogue moderator account mass-banning members or deleting channels.
// When an actor crosses a threshold inside the sliding window, the
// watcher bans the actor and raises an alert in the announcement
// channel.
package security

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"riftboard/internal/api"
	"riftboard/internal/config"
)

// kickAuditMaxAge bounds how old a kick audit entry may be and still be
// attributed to the member-remove event that just fired. Older entries
// mean the member left on their own.
const kickAuditMaxAge = 15 * time.Second

// ModerationAPI is the slice of the gateway the watcher needs.
// *discordgo.Session satisfies it.
type ModerationAPI interface {
	GuildAuditLog(guildID, userID, beforeID string, actionType, limit int, options ...discordgo.RequestOption) (*discordgo.GuildAuditLog, error)
	GuildBanCreateWithReason(guildID, userID, reason string, days int, options ...discordgo.RequestOption) error
}

// Watcher tracks destructive moderation actions per actor and bans
// actors that burst past the configured thresholds.
type Watcher struct {
	cfg     config.SecurityConfig
	mod     ModerationAPI
	alert   func(content string) // posts to the announcement channel
	selfID  string
	tracker *Tracker

	mu     sync.Mutex
	banned map[string]bool
}

// NewWatcher builds a watcher. alert posts to the shared announcement
// channel; selfID is the bot's own user id so its actions are never
// counted against it.
func NewWatcher(cfg config.SecurityConfig, mod ModerationAPI, selfID string, alert func(content string)) *Watcher {
	return &Watcher{
		cfg:     cfg,
		mod:     mod,
		alert:   alert,
		selfID:  selfID,
		tracker: NewTracker(cfg.Window),
		banned:  make(map[string]bool),
	}
}

// Attach registers the gateway event handlers on the session.
func (w *Watcher) Attach(s *discordgo.Session) {
	s.AddHandler(func(_ *discordgo.Session, ev *discordgo.GuildBanAdd) {
		w.HandleBanAdd(ev.GuildID, ev.User.ID)
	})
	s.AddHandler(func(_ *discordgo.Session, ev *discordgo.GuildMemberRemove) {
		w.HandleMemberRemove(ev.GuildID, ev.User.ID)
	})
	s.AddHandler(func(_ *discordgo.Session, ev *discordgo.ChannelDelete) {
		w.HandleChannelDelete(ev.GuildID, ev.ID)
	})
	log.Println("🛡️ Security watcher attached")
}

// HandleBanAdd processes a member ban event.
func (w *Watcher) HandleBanAdd(guildID, targetID string) {
	actor := w.lookupActor(guildID, discordgo.AuditLogActionMemberBanAdd, targetID, 0)
	if !w.countable(actor) {
		return
	}
	api.RecordSecurityAction("ban_tracked")
	if n := w.tracker.Record(actor, ActionBan); n >= w.cfg.BanThreshold {
		w.punish(guildID, actor, ActionBan, n)
	}
}

// HandleMemberRemove processes a member-remove event, which fires for
// both kicks and voluntary leaves. Only a fresh kick audit entry for the
// removed member counts.
func (w *Watcher) HandleMemberRemove(guildID, targetID string) {
	actor := w.lookupActor(guildID, discordgo.AuditLogActionMemberKick, targetID, kickAuditMaxAge)
	if !w.countable(actor) {
		return
	}
	api.RecordSecurityAction("kick_tracked")
	if n := w.tracker.Record(actor, ActionKick); n >= w.cfg.KickThreshold {
		w.punish(guildID, actor, ActionKick, n)
	}
}

// HandleChannelDelete processes a channel deletion event.
func (w *Watcher) HandleChannelDelete(guildID, channelID string) {
	actor := w.lookupActor(guildID, discordgo.AuditLogActionChannelDelete, channelID, 0)
	if !w.countable(actor) {
		return
	}
	api.RecordSecurityAction("channel_delete_tracked")
	if n := w.tracker.Record(actor, ActionChannelDelete); n >= w.cfg.DeleteThreshold {
		w.punish(guildID, actor, ActionChannelDelete, n)
	}
}

// countable filters actors the watcher should ignore: unknown (audit
// lookup failed), the bot itself, or an actor already dealt with.
func (w *Watcher) countable(actor string) bool {
	if actor == "" || actor == w.selfID {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.banned[actor]
}

// lookupActor finds who performed the most recent audit action of the
// given type against target. maxAge of zero accepts any entry age.
func (w *Watcher) lookupActor(guildID string, action discordgo.AuditLogAction, targetID string, maxAge time.Duration) string {
	audit, err := w.mod.GuildAuditLog(guildID, "", "", int(action), 10)
	if err != nil {
		log.Printf("⚠️ Audit log lookup failed: %v", err)
		return ""
	}
	for _, entry := range audit.AuditLogEntries {
		if entry.TargetID != targetID {
			continue
		}
		if maxAge > 0 {
			ts, err := discordgo.SnowflakeTimestamp(entry.ID)
			if err != nil || time.Since(ts) > maxAge {
				continue
			}
		}
		return entry.UserID
	}
	return ""
}

func (w *Watcher) punish(guildID, actor string, kind Action, count int) {
	w.mu.Lock()
	if w.banned[actor] {
		w.mu.Unlock()
		return
	}
	w.banned[actor] = true
	w.mu.Unlock()

	reason := fmt.Sprintf("Security: %d %s actions within %s", count, kind, w.cfg.Window)
	if err := w.mod.GuildBanCreateWithReason(guildID, actor, reason, 0); err != nil {
		log.Printf("❌ Failed to ban actor %s: %v", actor, err)
		// Keep the alert so a human can intervene even when the ban
		// itself failed (e.g. role hierarchy).
	}
	api.RecordSecurityAction("auto_ban")
	w.tracker.Reset(actor)

	log.Printf("🚨 Security: banned %s after %d %s actions", actor, count, kind)
	w.alert(fmt.Sprintf("🚨 **SECURITY ALERT** 🚨\n<@%s> performed %d %s actions within %s and has been banned. RIP BOZO.",
		actor, count, kind, w.cfg.Window))
}
