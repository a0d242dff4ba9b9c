// Package board drives the leaderboard pipeline per game mode: the
// rolling fetch loop that feeds the snapshot store, and the display
// cycle that detects overtakes, renders the board image and keeps the
// channel messages fresh.
package board

import (
	"bytes"
	"context"
	"io"
	"time"

	"riftboard/internal/rank"
	"riftboard/internal/riot"
)

// Gateway is the narrow chat-platform surface the pipeline needs.
// discord.Session satisfies it; tests use fakes.
type Gateway interface {
	SendText(channelID, content string) (messageID string, err error)
	SendImage(channelID, filename string, r io.Reader) (messageID string, err error)
	EditText(channelID, messageID, content string) error
	DeleteMessage(channelID, messageID string) error

	// IsNotFound classifies an error as "target message/channel is
	// gone", which the pipeline recovers from by dropping the handle.
	IsNotFound(err error) bool
}

// Renderer composes a board image for an ordered snapshot.
type Renderer interface {
	RenderLeaderboard(entries []rank.Entry, backgroundPath string) (*bytes.Buffer, error)
}

// StatsSource is one mode's view of the stats provider.
type StatsSource interface {
	RankedEntriesByPUUID(ctx context.Context, puuid string) ([]riot.LeagueEntry, error)
}

func sleepUntil(ctx context.Context, deadline time.Time) error {
	d := time.Until(deadline)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
