package board

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"riftboard/internal/api"
	"riftboard/internal/rank"
	"riftboard/internal/riot"
)

// batchConcurrency caps in-flight provider lookups per batch; the
// client's own rate limiter does the fine-grained pacing.
const batchConcurrency = 8

// FetcherConfig wires one mode's rolling fetch loop.
type FetcherConfig struct {
	Mode      string // display tag, e.g. "LoL"
	QueueType string // queue filter inside the ranked response
	Interval  time.Duration

	// Resolve maps a display name to the provider's opaque player id;
	// empty means the player has no account on file for this mode.
	Resolve func(name string) string
}

// Fetcher pulls one roster batch per tick, scores the results and
// merges them into the store. Owned by a single goroutine.
type Fetcher struct {
	cfg     FetcherConfig
	stats   StatsSource
	store   *rank.Store
	batcher *rank.Batcher
}

// NewFetcher builds a fetch loop over the given roster.
func NewFetcher(cfg FetcherConfig, stats StatsSource, store *rank.Store, batcher *rank.Batcher) *Fetcher {
	return &Fetcher{cfg: cfg, stats: stats, store: store, batcher: batcher}
}

// FetchAll performs one full roster pass, batches in parallel. Used
// once at startup so the first display cycle has a complete board.
func (f *Fetcher) FetchAll(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < f.batcher.BatchCount(); i++ {
		batch := f.batcher.Next()
		g.Go(func() error {
			f.fetchBatch(gctx, batch)
			return nil
		})
	}
	_ = g.Wait()
	log.Printf("[%s] Initial full fetch complete, %d players on board", f.cfg.Mode, f.store.Len(f.cfg.Mode))
}

// Run ticks forever at the fetch interval, one batch per tick, until
// the context is cancelled. A tick that fails entirely merges nothing
// and the loop simply moves on to the next batch.
func (f *Fetcher) Run(ctx context.Context) {
	ticker := time.NewTicker(f.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.safeTick(ctx)
		}
	}
}

// safeTick keeps a panicking tick from killing the recurring task.
func (f *Fetcher) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ [%s] Fetch tick panicked: %v", f.cfg.Mode, r)
		}
	}()

	batch := f.batcher.Next()
	if len(batch) == 0 {
		return
	}
	log.Printf("[%s] Fetching rolling update for batch: %v", f.cfg.Mode, batch)
	f.fetchBatch(ctx, batch)
}

// fetchBatch looks every player in the batch up concurrently and merges
// whatever resolved. Failed lookups are skipped: a player is only ever
// marked unranked by a genuine not-found response, never by an error.
func (f *Fetcher) fetchBatch(ctx context.Context, batch []string) {
	var (
		mu      sync.Mutex
		results []rank.Entry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for _, name := range batch {
		name := name
		g.Go(func() error {
			if entry, ok := f.lookupPlayer(gctx, name); ok {
				mu.Lock()
				results = append(results, entry)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, e := range results {
		log.Printf("[%s] Fetched: %-16s -> %s", f.cfg.Mode, e.PlayerID, e.DisplayText)
	}

	// Empty merges are no-ops by contract, so a fully failed batch can
	// never disturb the existing board.
	f.store.MergeBatch(f.cfg.Mode, results)
	api.SetSnapshotPlayers(f.cfg.Mode, f.store.Len(f.cfg.Mode))
}

func (f *Fetcher) lookupPlayer(ctx context.Context, name string) (rank.Entry, bool) {
	puuid := f.cfg.Resolve(name)
	if puuid == "" {
		return rank.Entry{}, false
	}

	entries, err := f.stats.RankedEntriesByPUUID(ctx, puuid)
	if err != nil {
		log.Printf("⚠️ [%s] Lookup failed for %s, keeping last known entry: %v", f.cfg.Mode, name, err)
		api.RecordFetchResult(f.cfg.Mode, "skipped")
		return rank.Entry{}, false
	}

	standing := riot.EntryForQueue(entries, f.cfg.QueueType)
	if standing == nil {
		api.RecordFetchResult(f.cfg.Mode, "unranked")
		return rank.UnrankedEntry(name), true
	}

	entry, err := rank.NewEntry(name, standing.Tier, standing.Rank, standing.LeaguePoints)
	if err != nil {
		// Ladder table out of sync with the provider's tier set. Loud,
		// and the player is skipped rather than silently zeroed.
		log.Printf("❌ [%s] %v (player %s)", f.cfg.Mode, err, name)
		api.RecordFetchResult(f.cfg.Mode, "skipped")
		return rank.Entry{}, false
	}
	api.RecordFetchResult(f.cfg.Mode, "ranked")
	return entry, true
}
