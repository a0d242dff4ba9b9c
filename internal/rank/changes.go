package rank

// Overtake records a player claiming a top slot previously held by
// someone else. Overtaken is whoever held exactly that slot before,
// not the literal player displaced down the list.
type Overtake struct {
	Overtaking Entry
	Overtaken  Entry
	Position   int // 1-based slot on the board
}

// DetectOvertakes compares two ordered snapshots and reports position
// changes within the top topK slots, best position first.
//
// A slot yields no event when the new holder is still unranked (score 0
// can only sit in a top slot while the board is degenerate), or when the
// new holder is absent from the previous snapshot (a brand-new entrant
// has no previous position to have overtaken).
func DetectOvertakes(previous, current Snapshot, topK int) []Overtake {
	band := topK
	if len(current) < band {
		band = len(current)
	}
	if len(previous) < band {
		band = len(previous)
	}

	var events []Overtake
	for i := 0; i < band; i++ {
		if current[i].PlayerID == previous[i].PlayerID {
			continue
		}
		if current[i].Score == 0 {
			continue
		}

		prevIdx := indexOf(previous, current[i].PlayerID)
		if prevIdx < 0 {
			continue
		}
		// Only an improvement counts; a player sliding down into view
		// is a data anomaly under correct sorting.
		if i >= prevIdx {
			continue
		}

		events = append(events, Overtake{
			Overtaking: current[i],
			Overtaken:  previous[i],
			Position:   i + 1,
		})
	}
	return events
}

func indexOf(s Snapshot, playerID string) int {
	for i, e := range s {
		if e.PlayerID == playerID {
			return i
		}
	}
	return -1
}
