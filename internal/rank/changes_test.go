package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOvertakesSimpleSwap(t *testing.T) {
	prev := Snapshot{entry("p1", 500), entry("p2", 400), entry("p3", 300)}
	cur := Snapshot{entry("p2", 600), entry("p1", 500), entry("p3", 300)}

	events := DetectOvertakes(prev, cur, 3)

	require.Len(t, events, 1)
	assert.Equal(t, "p2", events[0].Overtaking.PlayerID)
	assert.Equal(t, "p1", events[0].Overtaken.PlayerID)
	assert.Equal(t, 1, events[0].Position)
}

func TestDetectOvertakesNoChange(t *testing.T) {
	snap := Snapshot{entry("p1", 500), entry("p2", 400)}
	assert.Empty(t, DetectOvertakes(snap, snap, 4))
}

func TestDetectOvertakesSuppressesUnranked(t *testing.T) {
	prev := Snapshot{entry("p1", 500), entry("p2", 0)}
	cur := Snapshot{entry("p2", 0), entry("p1", 500)}

	assert.Empty(t, DetectOvertakes(prev, cur, 4))
}

func TestDetectOvertakesIgnoresNewEntrants(t *testing.T) {
	prev := Snapshot{entry("p1", 500), entry("p2", 400)}
	cur := Snapshot{entry("p9", 900), entry("p1", 500)}

	// p9 was never on the previous board, so there is no previous
	// position to have overtaken.
	assert.Empty(t, DetectOvertakes(prev, cur, 4))
}

func TestDetectOvertakesIgnoresRegressions(t *testing.T) {
	// p1 slid from slot 0 to slot 1; their move is not an overtake.
	// p2's climb into slot 0 is.
	prev := Snapshot{entry("p1", 500), entry("p2", 400), entry("p3", 300)}
	cur := Snapshot{entry("p2", 600), entry("p3", 550), entry("p1", 500)}

	events := DetectOvertakes(prev, cur, 3)

	require.Len(t, events, 2)
	assert.Equal(t, "p2", events[0].Overtaking.PlayerID)
	assert.Equal(t, 1, events[0].Position)
	assert.Equal(t, "p3", events[1].Overtaking.PlayerID)
	assert.Equal(t, "p2", events[1].Overtaken.PlayerID)
	assert.Equal(t, 2, events[1].Position)
}

func TestDetectOvertakesOrderedByPosition(t *testing.T) {
	prev := Snapshot{entry("a", 900), entry("b", 800), entry("c", 700), entry("d", 600)}
	cur := Snapshot{entry("b", 950), entry("a", 900), entry("d", 750), entry("c", 700)}

	events := DetectOvertakes(prev, cur, 4)

	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Position)
	assert.Equal(t, 3, events[1].Position)
}

func TestDetectOvertakesRespectsTopK(t *testing.T) {
	prev := Snapshot{entry("a", 900), entry("b", 800), entry("c", 700), entry("d", 600)}
	cur := Snapshot{entry("a", 900), entry("b", 800), entry("d", 750), entry("c", 700)}

	assert.Empty(t, DetectOvertakes(prev, cur, 2))
	assert.Len(t, DetectOvertakes(prev, cur, 3), 1)
}

func TestDetectOvertakesEmptyPrevious(t *testing.T) {
	cur := Snapshot{entry("a", 900), entry("b", 800)}
	assert.Empty(t, DetectOvertakes(nil, cur, 4))
}
