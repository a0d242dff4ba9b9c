package board

import (
	"context"
	"fmt"
	"log"
	"time"

	"riftboard/internal/api"
	"riftboard/internal/rank"
)

const statusRefreshing = "Refreshing leaderboard..."
const statusRenderFailed = "Error updating leaderboard, retrying next cycle"

// CycleConfig wires one mode's display cycle.
type CycleConfig struct {
	Mode           string
	ChannelID      string
	BackgroundPath string
	Interval       time.Duration
	TopK           int
}

// Cycle runs the per-mode display state machine: refresh the status
// message, read a snapshot, announce overtakes, render, republish the
// board image, then count down to the next run. All fields below the
// dependencies are owned by the cycle goroutine alone.
type Cycle struct {
	cfg       CycleConfig
	gateway   Gateway
	renderer  Renderer
	store     *rank.Store
	announcer *Announcer
	countdown *Countdown

	previous    rank.Snapshot
	statusMsgID string
	imageMsgID  string
}

// NewCycle builds a display cycle for one game mode.
func NewCycle(cfg CycleConfig, gateway Gateway, renderer Renderer, store *rank.Store, announcer *Announcer) *Cycle {
	return &Cycle{
		cfg:       cfg,
		gateway:   gateway,
		renderer:  renderer,
		store:     store,
		announcer: announcer,
		countdown: NewCountdown(),
	}
}

// Run loops until cancellation: one cycle, then a countdown to the
// next. A failed or panicking cycle never takes the loop down; it logs
// and tries again on the next interval. Other modes run their own Cycle
// and are unaffected.
func (c *Cycle) Run(ctx context.Context) {
	for ctx.Err() == nil {
		deadline := time.Now().Add(c.cfg.Interval)
		c.safeCycle(ctx)

		c.countdown.Run(ctx, deadline, c.editStatusForCountdown)
		if err := sleepUntil(ctx, deadline); err != nil {
			return
		}
	}
}

// RunOnce executes a single display cycle. Exposed for the startup path
// which wants one immediate publish before the loop takes over.
func (c *Cycle) RunOnce(ctx context.Context) {
	c.safeCycle(ctx)
}

func (c *Cycle) safeCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ [%s] Display cycle panicked: %v", c.cfg.Mode, r)
			api.RecordDisplayCycle(c.cfg.Mode, "panic")
		}
	}()
	c.runCycle(ctx)
}

func (c *Cycle) runCycle(ctx context.Context) {
	// REFRESHING: flip the status message to a placeholder. Losing the
	// message is tolerated; it gets recreated.
	c.setStatus(statusRefreshing)

	snap := c.store.Snapshot(c.cfg.Mode)
	if len(snap) == 0 {
		// Nothing fetched yet; previous stays untouched and nothing is
		// posted.
		log.Printf("⚠️ [%s] No rankings available to display", c.cfg.Mode)
		api.RecordDisplayCycle(c.cfg.Mode, "empty")
		return
	}

	// Announce overtakes against the retained previous snapshot. Each
	// send stands alone.
	for _, ev := range rank.DetectOvertakes(c.previous, snap, c.cfg.TopK) {
		c.announcer.AnnounceOvertake(c.cfg.Mode, ev)
	}

	// The single place previous advances, events or not.
	c.previous = snap

	// RENDERING.
	start := time.Now()
	buf, err := c.renderer.RenderLeaderboard(snap, c.cfg.BackgroundPath)
	if err != nil {
		log.Printf("❌ [%s] Failed to render leaderboard: %v", c.cfg.Mode, err)
		c.setStatus(statusRenderFailed)
		api.RecordDisplayCycle(c.cfg.Mode, "render_error")
		return
	}
	api.ObserveRenderDuration(time.Since(start))

	// PUBLISHING: drop last cycle's image, post the new one.
	if c.imageMsgID != "" {
		if err := c.gateway.DeleteMessage(c.cfg.ChannelID, c.imageMsgID); err != nil && !c.gateway.IsNotFound(err) {
			log.Printf("⚠️ [%s] Could not delete previous board image: %v", c.cfg.Mode, err)
		}
		c.imageMsgID = ""
	}

	filename := fmt.Sprintf("%s_leaderboard.png", c.cfg.Mode)
	msgID, err := c.gateway.SendImage(c.cfg.ChannelID, filename, buf)
	if err != nil {
		log.Printf("❌ [%s] Failed to post board image: %v", c.cfg.Mode, err)
		c.setStatus(statusRenderFailed)
		api.RecordDisplayCycle(c.cfg.Mode, "publish_error")
		return
	}
	c.imageMsgID = msgID

	api.RecordDisplayCycle(c.cfg.Mode, "ok")
	log.Printf("[%s] Successfully posted new leaderboard (%d players)", c.cfg.Mode, len(snap))
}

// setStatus edits the status message in place, creating it when missing
// and recreating it when the platform reports it gone. Failures are
// logged, never fatal to the cycle.
func (c *Cycle) setStatus(content string) {
	if c.statusMsgID != "" {
		err := c.gateway.EditText(c.cfg.ChannelID, c.statusMsgID, content)
		if err == nil {
			return
		}
		if !c.gateway.IsNotFound(err) {
			log.Printf("⚠️ [%s] Failed to edit status message: %v", c.cfg.Mode, err)
			return
		}
		log.Printf("⚠️ [%s] Status message lost, recreating", c.cfg.Mode)
		c.statusMsgID = ""
	}

	id, err := c.gateway.SendText(c.cfg.ChannelID, content)
	if err != nil {
		log.Printf("⚠️ [%s] Failed to create status message: %v", c.cfg.Mode, err)
		return
	}
	c.statusMsgID = id
}

// editStatusForCountdown adapts the gateway for the countdown: a lost
// message maps to ErrStatusGone so the presenter stops silently.
func (c *Cycle) editStatusForCountdown(text string) error {
	if c.statusMsgID == "" {
		id, err := c.gateway.SendText(c.cfg.ChannelID, text)
		if err != nil {
			return err
		}
		c.statusMsgID = id
		return nil
	}
	if err := c.gateway.EditText(c.cfg.ChannelID, c.statusMsgID, text); err != nil {
		if c.gateway.IsNotFound(err) {
			c.statusMsgID = ""
			return ErrStatusGone
		}
		return err
	}
	return nil
}
