package rank

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, score int) Entry {
	return Entry{PlayerID: id, Score: score}
}

func ids(s Snapshot) []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = e.PlayerID
	}
	return out
}

func TestMergeBatchSortsDescendingByScore(t *testing.T) {
	s := NewStore()
	s.MergeBatch("lol", []Entry{entry("a", 300), entry("b", 500), entry("c", 400)})

	assert.Equal(t, []string{"b", "c", "a"}, ids(s.Snapshot("lol")))
}

func TestMergeBatchIdempotent(t *testing.T) {
	s := NewStore()
	batch := []Entry{entry("a", 300), entry("b", 500)}

	s.MergeBatch("lol", batch)
	first := s.Snapshot("lol")
	s.MergeBatch("lol", batch)
	second := s.Snapshot("lol")

	assert.Equal(t, first, second)
	assert.Len(t, second, 2)
}

func TestMergeBatchReplacesByPlayerID(t *testing.T) {
	s := NewStore()
	s.MergeBatch("lol", []Entry{entry("a", 300), entry("b", 500)})
	s.MergeBatch("lol", []Entry{entry("a", 600)})

	snap := s.Snapshot("lol")
	require.Len(t, snap, 2)
	assert.Equal(t, []string{"a", "b"}, ids(snap))
	assert.Equal(t, 600, snap[0].Score)
}

func TestMergeBatchPreservesUnrelatedEntries(t *testing.T) {
	s := NewStore()
	s.MergeBatch("lol", []Entry{entry("a", 300), entry("b", 500), entry("c", 100)})
	s.MergeBatch("lol", []Entry{entry("a", 310), entry("b", 510)})

	snap := s.Snapshot("lol")
	require.Len(t, snap, 3)
	assert.Equal(t, entry("c", 100), snap[2])
}

func TestMergeBatchEmptyIsNoOp(t *testing.T) {
	s := NewStore()
	s.MergeBatch("lol", []Entry{entry("a", 300), entry("b", 500)})
	before := s.Snapshot("lol")

	s.MergeBatch("lol", nil)
	s.MergeBatch("lol", []Entry{})

	assert.Equal(t, before, s.Snapshot("lol"))
}

func TestMergeOrderInsensitive(t *testing.T) {
	entries := []Entry{entry("a", 300), entry("b", 500), entry("c", 300), entry("d", 100)}

	s1 := NewStore()
	for _, e := range entries {
		s1.MergeBatch("lol", []Entry{e})
	}

	s2 := NewStore()
	for i := len(entries) - 1; i >= 0; i-- {
		s2.MergeBatch("lol", []Entry{entries[i]})
	}

	assert.Equal(t, s1.Snapshot("lol"), s2.Snapshot("lol"))
	// Equal scores tie-break on ascending player id.
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(s1.Snapshot("lol")))
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.MergeBatch("lol", []Entry{entry("a", 300)})

	snap := s.Snapshot("lol")
	snap[0].Score = 999

	assert.Equal(t, 300, s.Snapshot("lol")[0].Score)
}

func TestModesAreIndependent(t *testing.T) {
	s := NewStore()
	s.MergeBatch("lol", []Entry{entry("a", 300)})
	s.MergeBatch("tft", []Entry{entry("b", 500)})

	assert.Equal(t, []string{"a"}, ids(s.Snapshot("lol")))
	assert.Equal(t, []string{"b"}, ids(s.Snapshot("tft")))
}

func TestConcurrentDisjointMergesLoseNothing(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				id := fmt.Sprintf("g%d-p%d", g, i)
				s.MergeBatch("lol", []Entry{entry(id, g*1000+i)})
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 100, s.Len("lol"))
}
