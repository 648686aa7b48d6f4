package player

import (
	"time"

	"github.com/PatelKrish-16/golazo/internal/match"
)

type Player struct {
	PlayerID   uint      `json:"player_id" gorm:"primaryKey;column:player_id"`
	PlayerName string    `json:"player_name" gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PlayerStats is the read model: a player plus cumulative stats derived
// from completed match history. The stats are recomputed on every read,
// never stored on the players table.
type PlayerStats struct {
	Player
	MatchesPlayed  int `json:"matches_played"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Losses         int `json:"losses"`
	GoalsScored    int `json:"goals_scored"`
	GoalsAgainst   int `json:"goals_against"`
	GoalDifference int `json:"goal_difference"`
	CleanSheets    int `json:"clean_sheets"`
}

// BuildStats derives cumulative stats for each player from the completed
// matches they appear in. Goals are counted at team level, so both 2v2
// teammates receive the full team totals.
func BuildStats(players []Player, matches []match.Match) []PlayerStats {
	stats := make([]PlayerStats, len(players))
	for i, p := range players {
		stats[i] = PlayerStats{Player: p}
	}

	byID := make(map[uint]*PlayerStats, len(players))
	for i := range stats {
		byID[stats[i].PlayerID] = &stats[i]
	}

	for _, m := range matches {
		if !m.Completed() {
			continue
		}
		for _, side := range []match.TeamSide{m.Team1(), m.Team2()} {
			for _, id := range side.PlayerIDs {
				s, ok := byID[id]
				if !ok {
					continue
				}
				own, opp, _ := m.Sides(id)
				s.MatchesPlayed++
				s.GoalsScored += *own.Goals
				s.GoalsAgainst += *opp.Goals
				switch {
				case *own.Goals > *opp.Goals:
					s.Wins++
				case *own.Goals < *opp.Goals:
					s.Losses++
				default:
					s.Draws++
				}
				if *opp.Goals == 0 {
					s.CleanSheets++
				}
			}
		}
	}

	for i := range stats {
		stats[i].GoalDifference = stats[i].GoalsScored - stats[i].GoalsAgainst
	}
	return stats
}
