package standing

// Point weights per scope. Round 1 (1v1) deliberately pays double the usual
// football rates; this asymmetry is part of the tournament format.
const (
	Round1WinPoints  = 6
	Round1DrawPoints = 2
	Round2WinPoints  = 3
	Round2DrawPoints = 1
)

// PointRule is the points awarded per win and draw in a scope. Losses
// always award zero.
type PointRule struct {
	Win  int
	Draw int
}

var (
	Round1Rule = PointRule{Win: Round1WinPoints, Draw: Round1DrawPoints}
	Round2Rule = PointRule{Win: Round2WinPoints, Draw: Round2DrawPoints}
)

// Round labels the calculator recognises.
const (
	Round1Label = "Round 1"
	Round2Label = "Round 2"
)

// Row is one player's line in a standings table. Derived, never persisted.
type Row struct {
	PlayerID       uint   `json:"player_id"`
	PlayerName     string `json:"player_name"`
	MatchesPlayed  int    `json:"matches_played"`
	Points         int    `json:"points"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsScored    int    `json:"goals_scored"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
}

// Table bundles the three standings scopes returned by the API.
type Table struct {
	Tournament []Row `json:"tournament"`
	Round1     []Row `json:"round1"`
	Round2     []Row `json:"round2"`
}
