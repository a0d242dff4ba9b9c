package board

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrStatusGone tells the countdown its status message no longer
// exists. It stops editing silently; the next cycle recreates the
// message.
var ErrStatusGone = errors.New("board: status message gone")

// Countdown live-edits a status message with the time remaining until
// the next display cycle. Edits happen only when the displayed text
// changes: minute granularity until the last few seconds, then
// per-second, which keeps the edit rate friendly to the platform API.
type Countdown struct {
	tick time.Duration
}

// NewCountdown returns a presenter ticking at one-second resolution.
func NewCountdown() *Countdown {
	return &Countdown{tick: time.Second}
}

// Run edits via edit until deadline, then returns. It returns early and
// silently when edit reports ErrStatusGone. The final edit at zero
// reads as "about to update" so the message never shows a stale
// "0 minutes".
func (cd *Countdown) Run(ctx context.Context, deadline time.Time, edit func(text string) error) {
	last := ""
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			if text := FormatCountdown(0); text != last {
				_ = edit(text)
			}
			return
		}

		text := FormatCountdown(int(remaining.Round(time.Second) / time.Second))
		if text != last {
			err := edit(text)
			switch {
			case err == nil:
				last = text
			case errors.Is(err, ErrStatusGone):
				return
			default:
				log.Printf("⚠️ Countdown edit failed: %v", err)
			}
		}

		sleep := cd.tick
		if remaining < sleep {
			sleep = remaining
		}
		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// FormatCountdown renders remaining whole seconds as the status text.
// Whole minutes (rounded up) until 10 seconds remain, then seconds.
func FormatCountdown(seconds int) string {
	if seconds <= 0 {
		return "Updating now..."
	}
	if seconds <= 10 {
		return fmt.Sprintf("Next update in: %d seconds", seconds)
	}
	minutes := (seconds + 59) / 60
	if minutes == 1 {
		return "Next update in: 1 minute"
	}
	return fmt.Sprintf("Next update in: %d minutes", minutes)
}
