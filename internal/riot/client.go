// Package riot is the stats-provider client: ranked standings by PUUID
// for League solo queue and TFT, with client-side rate limiting and
// bounded retries. A hard failure after retries surfaces as an error,
// which callers treat as "skip this player this tick", never as
// "unranked". Unranked only comes from a genuine not-found response.
package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Game selects which ranked API a client talks to.
type Game string

const (
	GameLeague Game = "lol"
	GameTFT    Game = "tft"
)

// entriesPath returns the ranked-entries endpoint for a PUUID.
func (g Game) entriesPath(puuid string) string {
	switch g {
	case GameTFT:
		return "/tft/league/v1/by-puuid/" + puuid
	default:
		return "/lol/league/v4/entries/by-puuid/" + puuid
	}
}

// LeagueEntry is one per-queue standing record as returned by the API.
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// Config controls a Client. Zero values fall back to safe defaults.
type Config struct {
	APIKey string
	Region string // platform routing value, e.g. "na1"
	Game   Game

	// BaseURL overrides the regional API host (tests).
	BaseURL string

	// Development API keys allow 20 requests/s.
	RequestsPerSecond float64
	Burst             int

	MaxRetries int
	RetryPause time.Duration
}

// Client fetches ranked standings for one game. Safe for concurrent use.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a rate-limited client for the given game and region.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.api.riotgames.com", cfg.Region)
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 20
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryPause <= 0 {
		cfg.RetryPause = time.Second
	}
	return &Client{
		cfg:     cfg,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

// RankedEntriesByPUUID fetches all per-queue standings for a player.
// A not-found response is a legitimate "unranked" result and returns an
// empty slice with no error. Rate-limit responses suspend for the
// provider-specified duration and retry; transient failures retry with
// a short pause; exhausted retries return an error.
func (c *Client) RankedEntriesByPUUID(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	url := c.baseURL + c.cfg.Game.entriesPath(puuid)

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		entries, retryAfter, err := c.fetchOnce(ctx, url)
		if err == nil {
			return entries, nil
		}
		lastErr = err

		pause := c.cfg.RetryPause
		if retryAfter > 0 {
			// Provider-directed backoff, suspend rather than spin.
			log.Printf("⏳ Riot %s rate limited (attempt %d/%d), backing off %v",
				c.cfg.Game, attempt, c.cfg.MaxRetries, retryAfter)
			pause = retryAfter
		}
		if attempt < c.cfg.MaxRetries {
			if err := sleepCtx(ctx, pause); err != nil {
				return nil, err
			}
		}
	}
	return nil, fmt.Errorf("riot: %s lookup for %s failed after %d attempts: %w",
		c.cfg.Game, puuid, c.cfg.MaxRetries, lastErr)
}

// fetchOnce performs a single request. retryAfter is non-zero only for
// rate-limit responses.
func (c *Client) fetchOnce(ctx context.Context, url string) (entries []LeagueEntry, retryAfter time.Duration, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("X-Riot-Token", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
			return nil, 0, fmt.Errorf("decode response: %w", err)
		}
		return entries, 0, nil

	case resp.StatusCode == http.StatusNotFound:
		// Player exists but has no ranked entries: unranked, not an error.
		return []LeagueEntry{}, 0, nil

	case resp.StatusCode == http.StatusTooManyRequests:
		after := time.Second
		if v := resp.Header.Get("Retry-After"); v != "" {
			if secs, perr := strconv.Atoi(v); perr == nil && secs > 0 {
				after = time.Duration(secs) * time.Second
			}
		}
		io.Copy(io.Discard, resp.Body)
		return nil, after, fmt.Errorf("rate limited (429)")

	default:
		io.Copy(io.Discard, resp.Body)
		return nil, 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}

// EntryForQueue selects the standing matching a queue type, or nil if
// the player has none for that queue.
func EntryForQueue(entries []LeagueEntry, queueType string) *LeagueEntry {
	for i := range entries {
		if entries[i].QueueType == queueType {
			return &entries[i]
		}
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
