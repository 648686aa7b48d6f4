package standing

import (
	"sort"

	"github.com/PatelKrish-16/golazo/internal/match"
)

// Compute builds all three standings tables from a snapshot of the match
// set. Pure function: recomputing on an unchanged snapshot yields identical
// output.
func Compute(matches []match.Match, names map[uint]string) Table {
	round1 := ComputeRound(matches, names, Round1Label, match.TypeOneVOne, Round1Rule)
	round2 := ComputeRound(matches, names, Round2Label, match.TypeTwoVTwo, Round2Rule)
	return Table{
		Tournament: MergeTournament(round1, round2),
		Round1:     round1,
		Round2:     round2,
	}
}

// ComputeRound accumulates a standings table over the completed matches of
// one round and match type. Goals are counted at team level, so both 2v2
// teammates receive the same team totals. Players with no matches in the
// scope are left out entirely.
func ComputeRound(matches []match.Match, names map[uint]string, round string, matchType match.Type, rule PointRule) []Row {
	rows := make(map[uint]*Row)

	for _, m := range matches {
		if !m.Completed() || m.Round != round || m.MatchType != matchType {
			continue
		}
		accumulate(rows, m.Team1(), m.Team2(), names)
		accumulate(rows, m.Team2(), m.Team1(), names)
	}

	table := make([]Row, 0, len(rows))
	for _, row := range rows {
		row.Points = row.Wins*rule.Win + row.Draws*rule.Draw
		row.GoalDifference = row.GoalsScored - row.GoalsAgainst
		table = append(table, *row)
	}
	sortRows(table)
	return table
}

func accumulate(rows map[uint]*Row, own, opponent match.TeamSide, names map[uint]string) {
	for _, id := range own.PlayerIDs {
		row, ok := rows[id]
		if !ok {
			row = &Row{PlayerID: id, PlayerName: names[id]}
			rows[id] = row
		}
		row.MatchesPlayed++
		row.GoalsScored += *own.Goals
		row.GoalsAgainst += *opponent.Goals
		switch {
		case *own.Goals > *opponent.Goals:
			row.Wins++
		case *own.Goals < *opponent.Goals:
			row.Losses++
		default:
			row.Draws++
		}
	}
}

// MergeTournament combines the two round tables into the overall standings.
// Round 1 drives the iteration: a player present in both rounds gets the
// numeric fields summed and the goal difference re-derived; a player with
// only round 1 matches carries over unchanged. Players who appear only in
// round 2 are not included, matching the tournament's published tables.
func MergeTournament(round1, round2 []Row) []Row {
	byID := make(map[uint]Row, len(round2))
	for _, row := range round2 {
		byID[row.PlayerID] = row
	}

	merged := make([]Row, 0, len(round1))
	for _, row := range round1 {
		if r2, ok := byID[row.PlayerID]; ok {
			row.MatchesPlayed += r2.MatchesPlayed
			row.Points += r2.Points
			row.Wins += r2.Wins
			row.Draws += r2.Draws
			row.Losses += r2.Losses
			row.GoalsScored += r2.GoalsScored
			row.GoalsAgainst += r2.GoalsAgainst
			row.GoalDifference = row.GoalsScored - row.GoalsAgainst
		}
		merged = append(merged, row)
	}
	sortRows(merged)
	return merged
}

// sortRows orders by points, then goal difference, both descending. The
// player id fallback only makes otherwise-unordered ties deterministic.
func sortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.PlayerID < b.PlayerID
	})
}
