package security

import (
	"sync"
	"time"
)

// Action is a tracked moderation action kind.
type Action string

const (
	ActionBan           Action = "ban"
	ActionKick          Action = "kick"
	ActionChannelDelete Action = "channel_delete"
)

// Tracker counts moderation actions per actor inside a sliding window.
// Safe for concurrent use; gateway events arrive on discordgo's handler
// goroutines.
type Tracker struct {
	mu     sync.Mutex
	window time.Duration
	events map[string][]time.Time

	// now is swappable in tests.
	now func() time.Time
}

// NewTracker creates a tracker with the given sliding window.
func NewTracker(window time.Duration) *Tracker {
	return &Tracker{
		window: window,
		events: make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Record notes one action by actorID and returns how many actions of
// that kind the actor has inside the current window, this one included.
func (t *Tracker) Record(actorID string, kind Action) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := actorID + "|" + string(kind)
	now := t.now()
	cutoff := now.Add(-t.window)

	kept := t.events[key][:0]
	for _, ts := range t.events[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	kept = append(kept, now)
	t.events[key] = kept
	return len(kept)
}

// Reset clears an actor's history, used after the actor has been dealt
// with so a later unban does not instantly re-trip the watcher.
func (t *Tracker) Reset(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key := range t.events {
		if len(key) > len(actorID) && key[:len(actorID)] == actorID && key[len(actorID)] == '|' {
			delete(t.events, key)
		}
	}
}
