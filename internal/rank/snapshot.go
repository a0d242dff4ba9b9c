package rank

import (
	"sort"
	"sync"
)

// Snapshot is an ordered, deduplicated ranking of all known players for
// one game mode at a point in time. Descending score, ties broken by
// ascending player id so repeated merges of unchanged data keep the
// exact same order.
type Snapshot []Entry

// Store holds the mutable ranked list per game mode. MergeBatch is the
// only mutator; Snapshot returns a copy so callers can never race with
// a concurrent merge. Merges for different modes never block each other.
type Store struct {
	mu     sync.Mutex
	boards map[string]*board
}

type board struct {
	mu      sync.Mutex
	entries []Entry
}

// NewStore creates an empty store. Boards are created lazily on first
// use of a mode.
func NewStore() *Store {
	return &Store{boards: make(map[string]*board)}
}

func (s *Store) board(mode string) *board {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[mode]
	if !ok {
		b = &board{}
		s.boards[mode] = b
	}
	return b
}

// MergeBatch folds a batch of fetch results into the mode's board:
// entries sharing a player id are replaced, new players are appended,
// and the whole list is re-sorted. An empty batch is a no-op so a fully
// failed fetch can never wipe or reorder existing standings.
func (s *Store) MergeBatch(mode string, batch []Entry) {
	if len(batch) == 0 {
		return
	}

	b := s.board(mode)
	b.mu.Lock()
	defer b.mu.Unlock()

	byID := make(map[string]int, len(b.entries))
	for i, e := range b.entries {
		byID[e.PlayerID] = i
	}
	for _, e := range batch {
		if i, ok := byID[e.PlayerID]; ok {
			b.entries[i] = e
			continue
		}
		byID[e.PlayerID] = len(b.entries)
		b.entries = append(b.entries, e)
	}

	sortEntries(b.entries)
}

// Snapshot returns a copy of the mode's current standings.
func (s *Store) Snapshot(mode string) Snapshot {
	b := s.board(mode)
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(Snapshot, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of players currently on the mode's board.
func (s *Store) Len(mode string) int {
	b := s.board(mode)
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
}
