package match

import (
	"strings"
	"time"
)

// Type distinguishes singles fixtures from pairs fixtures.
type Type string

const (
	TypeOneVOne Type = "1v1"
	TypeTwoVTwo Type = "2v2"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Result is derived from the goal counts and only set on completed matches.
type Result string

const (
	ResultTeam1 Result = "Team1"
	ResultTeam2 Result = "Team2"
	ResultDraw  Result = "Draw"
)

// Match is a single fixture between two teams. A team is one player (1v1)
// or two players (2v2); the secondary slots stay NULL for 1v1.
type Match struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Round          string     `json:"round" gorm:"index;not null"`
	MatchType      Type       `json:"match_type" gorm:"index;not null"`
	Team1Player1ID uint       `json:"team1_player1_id" gorm:"index;not null"`
	Team1Player2ID *uint      `json:"team1_player2_id" gorm:"index"`
	Team2Player1ID uint       `json:"team2_player1_id" gorm:"index;not null"`
	Team2Player2ID *uint      `json:"team2_player2_id" gorm:"index"`
	MatchDate      time.Time  `json:"match_date" gorm:"index;not null"`
	ScheduledDate  time.Time  `json:"scheduled_date"`
	Team1Goals     *int       `json:"team1_goals"`
	Team2Goals     *int       `json:"team2_goals"`
	Status         Status     `json:"status" gorm:"index;not null;default:'SCHEDULED'"`
	Result         *Result    `json:"result,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TeamSide is one team of a match: its member ids and the goals the team
// scored. All standings and statistics code works against sides, so the
// 1v1/2v2 distinction stays out of the aggregation logic.
type TeamSide struct {
	PlayerIDs []uint
	Goals     *int
}

func (m *Match) Team1() TeamSide {
	ids := []uint{m.Team1Player1ID}
	if m.Team1Player2ID != nil {
		ids = append(ids, *m.Team1Player2ID)
	}
	return TeamSide{PlayerIDs: ids, Goals: m.Team1Goals}
}

func (m *Match) Team2() TeamSide {
	ids := []uint{m.Team2Player1ID}
	if m.Team2Player2ID != nil {
		ids = append(ids, *m.Team2Player2ID)
	}
	return TeamSide{PlayerIDs: ids, Goals: m.Team2Goals}
}

// Completed reports whether both goal counts are recorded.
func (m *Match) Completed() bool {
	return m.Team1Goals != nil && m.Team2Goals != nil
}

func (m *Match) TotalGoals() int {
	total := 0
	if m.Team1Goals != nil {
		total += *m.Team1Goals
	}
	if m.Team2Goals != nil {
		total += *m.Team2Goals
	}
	return total
}

// Sides returns the player's own side and the opposing side, or ok=false
// when the player is not part of the match.
func (m *Match) Sides(playerID uint) (own, opponent TeamSide, ok bool) {
	t1, t2 := m.Team1(), m.Team2()
	if t1.Has(playerID) {
		return t1, t2, true
	}
	if t2.Has(playerID) {
		return t2, t1, true
	}
	return TeamSide{}, TeamSide{}, false
}

// Winner returns the winning side of a completed match, ok=false on a draw
// or when the match has no score yet.
func (m *Match) Winner() (TeamSide, bool) {
	if !m.Completed() {
		return TeamSide{}, false
	}
	switch {
	case *m.Team1Goals > *m.Team2Goals:
		return m.Team1(), true
	case *m.Team2Goals > *m.Team1Goals:
		return m.Team2(), true
	default:
		return TeamSide{}, false
	}
}

func (s TeamSide) Has(playerID uint) bool {
	for _, id := range s.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// DisplayName renders the side for API payloads: the player's name for a
// singles team, "A & B" for a pairs team.
func (s TeamSide) DisplayName(names map[uint]string) string {
	parts := make([]string, 0, len(s.PlayerIDs))
	for _, id := range s.PlayerIDs {
		parts = append(parts, names[id])
	}
	return strings.Join(parts, " & ")
}

// DeriveResult maps a final score to a match result: strictly more goals
// wins, equal goals is a draw.
func DeriveResult(team1Goals, team2Goals int) Result {
	switch {
	case team1Goals > team2Goals:
		return ResultTeam1
	case team2Goals > team1Goals:
		return ResultTeam2
	default:
		return ResultDraw
	}
}
