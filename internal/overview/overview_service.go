package overview

import (
	"math"
	"sort"

	"github.com/PatelKrish-16/golazo/internal/match"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Compute derives the full overview bundle from a snapshot of the match
// set. Each statistic is computed independently over the completed
// matches; one statistic having no data never blocks the others.
func Compute(matches []match.Match, names map[uint]string) Overview {
	completed := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Completed() {
			completed = append(completed, m)
		}
	}
	// Newest first; the streak and detail listings depend on this order.
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].MatchDate.After(completed[j].MatchDate)
	})

	return Overview{
		Progress:       computeProgress(len(completed)),
		Stats:          computeBasicStats(completed),
		TopScorer:      computeTopScorer(completed, names),
		LatestMatch:    computeLatestMatch(completed, names),
		HighestScoring: computeHighestScoring(completed, names),
		CurrentStreak:  computeCurrentStreak(completed, names),
		BestDefense:    computeBestDefense(completed, names),
		CleanSheets:    computeCleanSheets(completed, names),
	}
}

func computeProgress(played int) Progress {
	p := Progress{
		MatchesPlayed:     played,
		TotalMatches:      totalMatchCount,
		CurrentPhase:      leaguePhase,
		PhaseTotalMatches: leaguePhaseCount,
		Percentage:        round1dp(float64(played) / totalMatchCount * 100),
	}
	if played < leaguePhaseCount {
		p.PhasePercentage = round1dp(float64(played) / leaguePhaseCount * 100)
	} else {
		p.CurrentPhase = knockoutPhase
		p.PhaseTotalMatches = totalMatchCount
		p.PhasePercentage = round1dp(float64(played-leaguePhaseCount) / knockoutMatchCount * 100)
	}
	return p
}

func computeBasicStats(completed []match.Match) BasicStats {
	stats := BasicStats{TotalMatches: len(completed)}
	for _, m := range completed {
		stats.TotalGoals += m.TotalGoals()
	}
	if stats.TotalMatches > 0 {
		stats.AverageGoals = round2dp(float64(stats.TotalGoals) / float64(stats.TotalMatches))
	}
	return stats
}

func computeTopScorer(completed []match.Match, names map[uint]string) *TopScorer {
	type scorer struct {
		playerID uint
		goals    int
		matches  int
		details  []ScorerMatchDetail
	}
	byID := make(map[uint]*scorer)
	var order []uint

	for _, m := range completed {
		for _, side := range []match.TeamSide{m.Team1(), m.Team2()} {
			for _, id := range side.PlayerIDs {
				s, ok := byID[id]
				if !ok {
					s = &scorer{playerID: id}
					byID[id] = s
					order = append(order, id)
				}
				own, opp, _ := m.Sides(id)
				s.goals += *own.Goals
				s.matches++
				s.details = append(s.details, ScorerMatchDetail{
					MatchDate:   m.MatchDate.Format(dateLayout),
					MatchType:   m.MatchType,
					GoalsScored: *own.Goals,
					Opponent:    opp.DisplayName(names),
				})
			}
		}
	}

	var scorers []*scorer
	for _, id := range order {
		if byID[id].goals > 0 {
			scorers = append(scorers, byID[id])
		}
	}
	if len(scorers) == 0 {
		return nil
	}

	avg := func(s *scorer) float64 { return float64(s.goals) / float64(s.matches) }
	sort.SliceStable(scorers, func(i, j int) bool {
		a, b := scorers[i], scorers[j]
		if a.goals != b.goals {
			return a.goals > b.goals
		}
		if avg(a) != avg(b) {
			return avg(a) > avg(b)
		}
		// Equal totals over fewer matches means higher efficiency.
		return a.matches < b.matches
	})

	leader := scorers[0]
	return &TopScorer{
		Name:    names[leader.playerID],
		Goals:   leader.goals,
		Matches: leader.matches,
		Average: round2dp(avg(leader)),
		Details: leader.details,
	}
}

func computeLatestMatch(completed []match.Match, names map[uint]string) *MatchSummary {
	if len(completed) == 0 {
		return nil
	}
	m := completed[0]
	return &MatchSummary{
		Team1:      m.Team1().DisplayName(names),
		Team2:      m.Team2().DisplayName(names),
		Score1:     *m.Team1Goals,
		Score2:     *m.Team2Goals,
		Date:       m.MatchDate.Format(dateTimeLayout),
		MatchType:  m.MatchType,
		IsComplete: true,
	}
}

func computeHighestScoring(completed []match.Match, names map[uint]string) *HighScoringMatch {
	if len(completed) == 0 {
		return nil
	}
	// completed is date-descending, so the first maximum also wins the
	// most-recent tiebreak.
	best := completed[0]
	for _, m := range completed[1:] {
		if m.TotalGoals() > best.TotalGoals() {
			best = m
		}
	}
	return &HighScoringMatch{
		Team1:      best.Team1().DisplayName(names),
		Team2:      best.Team2().DisplayName(names),
		Score1:     *best.Team1Goals,
		Score2:     *best.Team2Goals,
		TotalGoals: best.TotalGoals(),
		Date:       best.MatchDate.Format(dateLayout),
		MatchType:  best.MatchType,
	}
}

func computeCurrentStreak(completed []match.Match, names map[uint]string) *WinStreak {
	var appearances []winnerAppearance
	for _, m := range completed {
		winner, ok := m.Winner()
		if !ok {
			continue
		}
		for _, id := range winner.PlayerIDs {
			appearances = append(appearances, winnerAppearance{PlayerID: id, Date: m.MatchDate})
		}
	}

	run, ok := longestCurrentRun(appearances)
	if !ok {
		return nil
	}

	streak := &WinStreak{
		Player:    names[run.PlayerID],
		Wins:      run.Length,
		MatchType: "1v1/2v2",
	}
	for _, m := range completed {
		if len(streak.Matches) == run.Length {
			break
		}
		winner, won := m.Winner()
		if !won || !winner.Has(run.PlayerID) {
			continue
		}
		if streak.LastMatch == "" {
			streak.LastMatch = m.MatchDate.Format(dateLayout)
		}
		streak.Matches = append(streak.Matches, StreakMatchDetail{
			MatchDate:  m.MatchDate.Format(dateLayout),
			MatchType:  m.MatchType,
			Team1Goals: *m.Team1Goals,
			Team2Goals: *m.Team2Goals,
		})
	}
	return streak
}

// minDefenseMatches is the sample threshold for the best-defense record; a
// keeper with two lucky games should not top the table.
const minDefenseMatches = 3

func computeBestDefense(completed []match.Match, names map[uint]string) *BestDefense {
	type defense struct {
		playerID uint
		conceded int
		matches  int
		details  []DefenseMatchDetail
	}
	byID := make(map[uint]*defense)
	var order []uint

	for _, m := range completed {
		for _, side := range []match.TeamSide{m.Team1(), m.Team2()} {
			for _, id := range side.PlayerIDs {
				d, ok := byID[id]
				if !ok {
					d = &defense{playerID: id}
					byID[id] = d
					order = append(order, id)
				}
				_, opp, _ := m.Sides(id)
				d.conceded += *opp.Goals
				d.matches++
				d.details = append(d.details, DefenseMatchDetail{
					MatchDate:     m.MatchDate.Format(dateLayout),
					MatchType:     m.MatchType,
					GoalsConceded: *opp.Goals,
					Opponent:      opp.DisplayName(names),
				})
			}
		}
	}

	var qualified []*defense
	for _, id := range order {
		if byID[id].matches >= minDefenseMatches {
			qualified = append(qualified, byID[id])
		}
	}
	if len(qualified) == 0 {
		return nil
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		a, b := qualified[i], qualified[j]
		if a.conceded != b.conceded {
			return a.conceded < b.conceded
		}
		// Equal concession over more matches is the stronger record.
		return a.matches > b.matches
	})

	leader := qualified[0]
	return &BestDefense{
		Player:       names[leader.playerID],
		GoalsAgainst: leader.conceded,
		Average:      round2dp(float64(leader.conceded) / float64(leader.matches)),
		Matches:      leader.matches,
		Details:      leader.details,
	}
}

// cleanSheetLimit caps the internal leaderboard; only the top entry is
// surfaced in the overview payload.
const cleanSheetLimit = 5

func computeCleanSheets(completed []match.Match, names map[uint]string) *CleanSheets {
	leaders := cleanSheetLeaders(completed, names)
	if len(leaders) == 0 {
		return nil
	}
	return &leaders[0]
}

// cleanSheetLeaders ranks players by completed matches where their team
// conceded zero: count descending, then percentage of their completed
// matches descending.
func cleanSheetLeaders(completed []match.Match, names map[uint]string) []CleanSheets {
	type sheet struct {
		playerID uint
		count    int
		total    int
		matches  []CleanSheetMatch
	}
	byID := make(map[uint]*sheet)
	var order []uint

	for _, m := range completed {
		for _, side := range []match.TeamSide{m.Team1(), m.Team2()} {
			for _, id := range side.PlayerIDs {
				s, ok := byID[id]
				if !ok {
					s = &sheet{playerID: id}
					byID[id] = s
					order = append(order, id)
				}
				s.total++
				_, opp, _ := m.Sides(id)
				if *opp.Goals == 0 {
					s.count++
					s.matches = append(s.matches, CleanSheetMatch{
						Date:      m.MatchDate.Format(dateLayout),
						Opponent:  opp.DisplayName(names),
						MatchType: m.MatchType,
					})
				}
			}
		}
	}

	var sheets []*sheet
	for _, id := range order {
		if byID[id].count > 0 {
			sheets = append(sheets, byID[id])
		}
	}
	pct := func(s *sheet) float64 { return float64(s.count) * 100 / float64(s.total) }
	sort.SliceStable(sheets, func(i, j int) bool {
		a, b := sheets[i], sheets[j]
		if a.count != b.count {
			return a.count > b.count
		}
		return pct(a) > pct(b)
	})
	if len(sheets) > cleanSheetLimit {
		sheets = sheets[:cleanSheetLimit]
	}

	leaders := make([]CleanSheets, 0, len(sheets))
	for _, s := range sheets {
		leaders = append(leaders, CleanSheets{
			Player:     names[s.playerID],
			Count:      s.count,
			Percentage: round1dp(pct(s)),
			Matches:    s.matches,
		})
	}
	return leaders
}

func round1dp(v float64) float64 { return math.Round(v*10) / 10 }
func round2dp(v float64) float64 { return math.Round(v*100) / 100 }
