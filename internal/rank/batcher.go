package rank

import "math/rand"

// Batcher partitions the player roster into fixed-size batches and
// cycles through them forever, one batch per fetch tick, so a full
// refresh of N players spreads across ceil(N/B) ticks instead of one
// burst. The roster is reshuffled after every full pass so API errors
// correlated with roster position don't always hit the same players.
//
// Not safe for concurrent use; each fetch loop owns its own Batcher.
type Batcher struct {
	roster    []string
	batchSize int
	batches   [][]string
	next      int
}

// NewBatcher copies and shuffles the roster, then partitions it.
// A batchSize below 1 puts the whole roster in a single batch.
func NewBatcher(roster []string, batchSize int) *Batcher {
	if batchSize < 1 {
		batchSize = len(roster)
		if batchSize == 0 {
			batchSize = 1
		}
	}
	b := &Batcher{
		roster:    append([]string(nil), roster...),
		batchSize: batchSize,
	}
	b.reshuffle()
	return b
}

// Next returns the next batch, reshuffling and starting a new pass
// after the last batch of the current one. Returns nil for an empty
// roster; it never terminates otherwise.
func (b *Batcher) Next() []string {
	if len(b.batches) == 0 {
		return nil
	}
	if b.next >= len(b.batches) {
		b.reshuffle()
	}
	batch := b.batches[b.next]
	b.next++
	return batch
}

// BatchCount is the number of batches in one full roster pass.
func (b *Batcher) BatchCount() int {
	return len(b.batches)
}

func (b *Batcher) reshuffle() {
	rand.Shuffle(len(b.roster), func(i, j int) {
		b.roster[i], b.roster[j] = b.roster[j], b.roster[i]
	})
	b.batches = b.batches[:0]
	for start := 0; start < len(b.roster); start += b.batchSize {
		end := start + b.batchSize
		if end > len(b.roster) {
			end = len(b.roster)
		}
		// Copied so a batch handed out before a reshuffle stays stable.
		b.batches = append(b.batches, append([]string(nil), b.roster[start:end]...))
	}
	b.next = 0
}
