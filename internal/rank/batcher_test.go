package rank

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("player%02d", i)
	}
	return out
}

func TestBatcherPartitionSizes(t *testing.T) {
	b := NewBatcher(roster(25), 8)

	sizes := []int{len(b.Next()), len(b.Next()), len(b.Next()), len(b.Next())}
	assert.Equal(t, []int{8, 8, 8, 1}, sizes)
}

func TestBatcherFullPassCoversEveryPlayer(t *testing.T) {
	players := roster(25)
	b := NewBatcher(players, 8)

	var seen []string
	for i := 0; i < 4; i++ {
		seen = append(seen, b.Next()...)
	}

	sort.Strings(seen)
	want := append([]string(nil), players...)
	sort.Strings(want)
	assert.Equal(t, want, seen)
}

func TestBatcherCyclesForever(t *testing.T) {
	b := NewBatcher(roster(25), 8)

	// Many passes past the roster size; every tick must yield a batch.
	for i := 0; i < 100; i++ {
		require.NotEmpty(t, b.Next(), "tick %d", i)
	}
}

func TestBatcherReshuffleKeepsMembership(t *testing.T) {
	players := roster(30)
	b := NewBatcher(players, 7)

	for pass := 0; pass < 3; pass++ {
		var seen []string
		for len(seen) < len(players) {
			seen = append(seen, b.Next()...)
		}
		sort.Strings(seen)
		want := append([]string(nil), players...)
		sort.Strings(want)
		require.Equal(t, want, seen, "pass %d", pass)
	}
}

func TestBatcherEmptyRoster(t *testing.T) {
	b := NewBatcher(nil, 8)
	assert.Nil(t, b.Next())
}

func TestBatcherBatchSizeBelowOne(t *testing.T) {
	b := NewBatcher(roster(5), 0)
	assert.Len(t, b.Next(), 5)
}

func TestBatcherDoesNotShareBackingArrays(t *testing.T) {
	b := NewBatcher(roster(6), 3)

	first := b.Next()
	held := append([]string(nil), first...)

	// Drain the pass to force a reshuffle, then a few more ticks.
	b.Next()
	for i := 0; i < 4; i++ {
		b.Next()
	}

	assert.Equal(t, held, first)
}
