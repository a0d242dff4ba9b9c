// Package rank holds the ranked-ladder scoring model and the in-memory
// leaderboard state shared between the fetch and display loops.
package rank

import (
	"fmt"
	"strings"
)

// TierUnranked is the sentinel tier for players with no ranked entry.
const TierUnranked = "UNRANKED"

// scoreMultiplier spaces adjacent ladder steps further apart than any
// plausible league-point total within a division, so two players in
// different divisions can never tie. Correctness-relevant, not cosmetic.
const scoreMultiplier = 100

// divisionedTiers are the tiers that carry IV..I sub-divisions,
// lowest first.
var divisionedTiers = []string{
	"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND",
}

// apexTiers have no sub-divisions and collapse to one shared ladder step.
var apexTiers = []string{"MASTER", "GRANDMASTER", "CHALLENGER"}

// divisions in ascending order of skill.
var divisions = []string{"IV", "III", "II", "I"}

// ladder maps "TIER DIVISION" (or a bare apex tier name) to a strictly
// increasing index starting at 1. Built once at init.
var ladder = buildLadder()

func buildLadder() map[string]int {
	l := make(map[string]int, len(divisionedTiers)*len(divisions)+len(apexTiers))
	idx := 1
	for _, tier := range divisionedTiers {
		for _, div := range divisions {
			l[tier+" "+div] = idx
			idx++
		}
	}
	// Apex tiers share the top step; league points alone order them.
	for _, tier := range apexTiers {
		l[tier] = idx
	}
	return l
}

// IsApexTier reports whether tier has no sub-divisions.
func IsApexTier(tier string) bool {
	switch strings.ToUpper(strings.TrimSpace(tier)) {
	case "MASTER", "GRANDMASTER", "CHALLENGER":
		return true
	}
	return false
}

// LadderIndex returns the ladder step for a tier/division pair.
// The table is exhaustive over the platform's known ranks, so an
// unrecognized pair means our table is out of sync with the provider
// and is reported as an error rather than silently defaulting.
func LadderIndex(tier, division string) (int, error) {
	tier = strings.ToUpper(strings.TrimSpace(tier))
	division = strings.ToUpper(strings.TrimSpace(division))

	key := tier
	if !IsApexTier(tier) {
		key = tier + " " + division
	}

	idx, ok := ladder[key]
	if !ok {
		return 0, fmt.Errorf("rank: unknown tier/division %q", key)
	}
	return idx, nil
}

// Score maps a tier/division/LP triple to a single comparable integer.
// Higher is better. Unranked players score 0 by definition and never
// reach this function.
func Score(tier, division string, leaguePoints int) (int, error) {
	idx, err := LadderIndex(tier, division)
	if err != nil {
		return 0, err
	}
	return idx*scoreMultiplier + leaguePoints, nil
}

// DisplayText formats the tier/division/LP line shown on the board.
// Apex tiers render without a division.
func DisplayText(tier, division string, leaguePoints int) string {
	tier = strings.ToUpper(strings.TrimSpace(tier))
	if tier == TierUnranked {
		return TierUnranked
	}
	if IsApexTier(tier) {
		return fmt.Sprintf("%s %d LP", tier, leaguePoints)
	}
	return fmt.Sprintf("%s %s %d LP", tier, strings.ToUpper(strings.TrimSpace(division)), leaguePoints)
}
