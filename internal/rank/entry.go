package rank

// Entry is one player's standing in a game mode, immutable once built
// from a fetch result.
type Entry struct {
	PlayerID     string `json:"playerId"`
	Score        int    `json:"score"`
	LeaguePoints int    `json:"leaguePoints"`
	Tier         string `json:"tier"`
	DisplayText  string `json:"displayText"`
}

// NewEntry builds a ranked entry, deriving the score and display text
// from the tier/division/LP triple.
func NewEntry(playerID, tier, division string, leaguePoints int) (Entry, error) {
	score, err := Score(tier, division, leaguePoints)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		PlayerID:     playerID,
		Score:        score,
		LeaguePoints: leaguePoints,
		Tier:         tier,
		DisplayText:  DisplayText(tier, division, leaguePoints),
	}, nil
}

// UnrankedEntry builds the entry for a player with no ranked standing.
// Score 0 sorts last and is deliberately ignored by the change detector.
func UnrankedEntry(playerID string) Entry {
	return Entry{
		PlayerID:    playerID,
		Tier:        TierUnranked,
		DisplayText: TierUnranked,
	}
}
