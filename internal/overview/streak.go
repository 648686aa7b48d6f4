package overview

import "time"

// winnerAppearance is one win credited to a player: a draw credits nobody,
// a 2v2 win credits both teammates.
type winnerAppearance struct {
	PlayerID uint
	Date     time.Time
}

// winnerRun is a maximal run of consecutive winner appearances for a
// single player within the globally date-ordered appearance sequence.
type winnerRun struct {
	PlayerID uint
	Length   int
	// groupKey is the difference between the appearance's global rank and
	// its per-player rank; it is constant within a run, and smaller keys
	// mean the run starts nearer the top of the history.
	groupKey int
}

// longestCurrentRun finds the longest maximal run in a sequence of winner
// appearances already ordered by date descending. Ties on length go to the
// run with the smallest group key (the one starting closest to the most
// recent match), then to the lower player id for determinism.
func longestCurrentRun(appearances []winnerAppearance) (winnerRun, bool) {
	type group struct {
		playerID uint
		key      int
	}
	perPlayerRank := make(map[uint]int)
	counts := make(map[group]int)

	for i, a := range appearances {
		perPlayerRank[a.PlayerID]++
		counts[group{playerID: a.PlayerID, key: (i + 1) - perPlayerRank[a.PlayerID]}]++
	}

	var best winnerRun
	found := false
	for g, length := range counts {
		candidate := winnerRun{PlayerID: g.playerID, Length: length, groupKey: g.key}
		if !found || better(candidate, best) {
			best = candidate
			found = true
		}
	}
	return best, found
}

func better(a, b winnerRun) bool {
	if a.Length != b.Length {
		return a.Length > b.Length
	}
	if a.groupKey != b.groupKey {
		return a.groupKey < b.groupKey
	}
	return a.PlayerID < b.PlayerID
}
