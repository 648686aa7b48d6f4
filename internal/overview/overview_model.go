package overview

import "github.com/PatelKrish-16/golazo/internal/match"

// Fixed tournament shape: 10 singles fixtures in round 1, 15 pairs
// fixtures in round 2, then a 4-match knockout stage.
const (
	round1MatchCount   = 10
	round2MatchCount   = 15
	knockoutMatchCount = 4
	totalMatchCount    = round1MatchCount + round2MatchCount + knockoutMatchCount
	leaguePhaseCount   = round1MatchCount + round2MatchCount
)

const (
	leaguePhase   = "League Phase"
	knockoutPhase = "Knockout Phase"
)

// Progress tracks how far through the fixed 29-match format the
// tournament is.
type Progress struct {
	Percentage        float64 `json:"percentage"`
	MatchesPlayed     int     `json:"matchesPlayed"`
	TotalMatches      int     `json:"totalMatches"`
	CurrentPhase      string  `json:"currentPhase"`
	PhasePercentage   float64 `json:"phasePercentage"`
	PhaseTotalMatches int     `json:"phaseTotalMatches"`
}

type BasicStats struct {
	TotalMatches int     `json:"totalMatches"`
	TotalGoals   int     `json:"totalGoals"`
	AverageGoals float64 `json:"averageGoals"`
}

type ScorerMatchDetail struct {
	MatchDate   string     `json:"match_date"`
	MatchType   match.Type `json:"match_type"`
	GoalsScored int        `json:"goals_scored"`
	Opponent    string     `json:"opponent"`
}

type TopScorer struct {
	Name    string              `json:"name"`
	Goals   int                 `json:"goals"`
	Matches int                 `json:"matches"`
	Average float64             `json:"average"`
	Details []ScorerMatchDetail `json:"details"`
}

// MatchSummary is the short card for the latest completed match.
type MatchSummary struct {
	Team1      string     `json:"team1"`
	Team2      string     `json:"team2"`
	Score1     int        `json:"score1"`
	Score2     int        `json:"score2"`
	Date       string     `json:"date"`
	MatchType  match.Type `json:"matchType"`
	IsComplete bool       `json:"isComplete"`
}

type HighScoringMatch struct {
	Team1      string     `json:"team1"`
	Team2      string     `json:"team2"`
	Score1     int        `json:"score1"`
	Score2     int        `json:"score2"`
	TotalGoals int        `json:"totalGoals"`
	Date       string     `json:"date"`
	MatchType  match.Type `json:"matchType"`
}

type StreakMatchDetail struct {
	MatchDate  string     `json:"match_date"`
	MatchType  match.Type `json:"match_type"`
	Team1Goals int        `json:"team1_goals"`
	Team2Goals int        `json:"team2_goals"`
}

// WinStreak is the longest run of consecutive wins still alive at the top
// of the match history. Streaks span both formats.
type WinStreak struct {
	Player    string              `json:"player"`
	Wins      int                 `json:"wins"`
	MatchType string              `json:"matchType"`
	LastMatch string              `json:"lastMatch"`
	Matches   []StreakMatchDetail `json:"matches"`
}

type DefenseMatchDetail struct {
	MatchDate     string     `json:"match_date"`
	MatchType     match.Type `json:"match_type"`
	GoalsConceded int        `json:"goals_conceded"`
	Opponent      string     `json:"opponent"`
}

type BestDefense struct {
	Player       string               `json:"player"`
	GoalsAgainst int                  `json:"goalsAgainst"`
	Average      float64              `json:"average"`
	Matches      int                  `json:"matches"`
	Details      []DefenseMatchDetail `json:"details"`
}

type CleanSheetMatch struct {
	Date      string     `json:"date"`
	Opponent  string     `json:"opponent"`
	MatchType match.Type `json:"matchType"`
}

type CleanSheets struct {
	Player     string            `json:"player"`
	Count      int               `json:"count"`
	Percentage float64           `json:"percentage"`
	Matches    []CleanSheetMatch `json:"matches"`
}

// Overview bundles the derived tournament records. Progress and stats
// always carry values (zero defaults on an empty dataset); the remaining
// fields are nil when no completed match satisfies their precondition, so
// "no data yet" stays distinguishable from a zero value.
type Overview struct {
	Progress       Progress          `json:"progress"`
	Stats          BasicStats        `json:"stats"`
	TopScorer      *TopScorer        `json:"topScorer"`
	LatestMatch    *MatchSummary     `json:"latestMatch"`
	HighestScoring *HighScoringMatch `json:"highestScoring"`
	CurrentStreak  *WinStreak        `json:"currentStreak"`
	BestDefense    *BestDefense      `json:"bestDefense"`
	CleanSheets    *CleanSheets      `json:"cleanSheets"`
}
