package overview

import (
	"testing"
	"time"

	"github.com/PatelKrish-16/golazo/internal/match"
)

var base = time.Date(2025, 4, 1, 19, 0, 0, 0, time.UTC)

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

// m1v1 builds a completed singles match played dayOffset days after base.
func m1v1(dayOffset int, p1, p2 uint, g1, g2 int) match.Match {
	result := match.DeriveResult(g1, g2)
	return match.Match{
		Round:          "Round 1",
		MatchType:      match.TypeOneVOne,
		Team1Player1ID: p1,
		Team2Player1ID: p2,
		MatchDate:      base.AddDate(0, 0, dayOffset),
		Team1Goals:     intPtr(g1),
		Team2Goals:     intPtr(g2),
		Status:         match.StatusCompleted,
		Result:         &result,
	}
}

func m2v2(dayOffset int, t1a, t1b, t2a, t2b uint, g1, g2 int) match.Match {
	result := match.DeriveResult(g1, g2)
	return match.Match{
		Round:          "Round 2",
		MatchType:      match.TypeTwoVTwo,
		Team1Player1ID: t1a,
		Team1Player2ID: uintPtr(t1b),
		Team2Player1ID: t2a,
		Team2Player2ID: uintPtr(t2b),
		MatchDate:      base.AddDate(0, 0, dayOffset),
		Team1Goals:     intPtr(g1),
		Team2Goals:     intPtr(g2),
		Status:         match.StatusCompleted,
		Result:         &result,
	}
}

func names() map[uint]string {
	return map[uint]string{1: "Ana", 2: "Bram", 3: "Cleo", 4: "Dev"}
}

func TestCompute_EmptyDataset(t *testing.T) {
	o := Compute(nil, names())

	if o.Progress.MatchesPlayed != 0 || o.Progress.TotalMatches != 29 {
		t.Fatalf("unexpected progress: %+v", o.Progress)
	}
	if o.Progress.CurrentPhase != "League Phase" || o.Progress.PhaseTotalMatches != 25 {
		t.Fatalf("expected league phase defaults: %+v", o.Progress)
	}
	if o.Stats.TotalMatches != 0 || o.Stats.TotalGoals != 0 || o.Stats.AverageGoals != 0 {
		t.Fatalf("unexpected stats: %+v", o.Stats)
	}
	if o.TopScorer != nil || o.LatestMatch != nil || o.HighestScoring != nil ||
		o.CurrentStreak != nil || o.BestDefense != nil || o.CleanSheets != nil {
		t.Fatalf("expected all optional records to be nil: %+v", o)
	}
}

func TestCompute_IgnoresScheduledMatches(t *testing.T) {
	scheduled := m1v1(1, 1, 2, 0, 0)
	scheduled.Status = match.StatusScheduled
	scheduled.Team1Goals = nil
	scheduled.Team2Goals = nil
	scheduled.Result = nil

	o := Compute([]match.Match{scheduled}, names())
	if o.Stats.TotalMatches != 0 || o.LatestMatch != nil {
		t.Fatalf("scheduled matches must not contribute: %+v", o)
	}
}

func TestComputeProgress_LeaguePhase(t *testing.T) {
	p := computeProgress(10)
	if p.Percentage != 34.5 {
		t.Fatalf("expected 34.5%% overall, got %v", p.Percentage)
	}
	if p.CurrentPhase != "League Phase" || p.PhasePercentage != 40.0 || p.PhaseTotalMatches != 25 {
		t.Fatalf("unexpected phase progress: %+v", p)
	}
}

func TestComputeProgress_KnockoutPhase(t *testing.T) {
	p := computeProgress(27)
	if p.CurrentPhase != "Knockout Phase" || p.PhaseTotalMatches != 29 {
		t.Fatalf("expected knockout phase: %+v", p)
	}
	if p.PhasePercentage != 50.0 { // 2 of 4 knockout matches
		t.Fatalf("expected 50.0%% phase progress, got %v", p.PhasePercentage)
	}
	if p.Percentage != 93.1 {
		t.Fatalf("expected 93.1%% overall, got %v", p.Percentage)
	}
}

func TestComputeBasicStats(t *testing.T) {
	matches := []match.Match{
		m1v1(1, 1, 2, 3, 1),
		m1v1(2, 3, 4, 2, 0),
		m1v1(3, 1, 3, 1, 0),
	}
	o := Compute(matches, names())
	if o.Stats.TotalMatches != 3 || o.Stats.TotalGoals != 7 {
		t.Fatalf("unexpected totals: %+v", o.Stats)
	}
	if o.Stats.AverageGoals != 2.33 {
		t.Fatalf("expected average 2.33, got %v", o.Stats.AverageGoals)
	}
}

func TestTopScorer_EfficiencyTiebreak(t *testing.T) {
	// Ana and Cleo both score 5; Ana needs fewer matches for it.
	matches := []match.Match{
		m1v1(1, 1, 2, 3, 0),
		m1v1(2, 1, 4, 2, 1),
		m1v1(3, 3, 2, 2, 0),
		m1v1(4, 3, 4, 2, 1),
		m1v1(5, 3, 2, 1, 1),
	}
	o := Compute(matches, names())
	if o.TopScorer == nil {
		t.Fatal("expected a top scorer")
	}
	if o.TopScorer.Name != "Ana" || o.TopScorer.Goals != 5 || o.TopScorer.Matches != 2 {
		t.Fatalf("unexpected top scorer: %+v", o.TopScorer)
	}
	if o.TopScorer.Average != 2.5 {
		t.Fatalf("expected average 2.5, got %v", o.TopScorer.Average)
	}
	if len(o.TopScorer.Details) != 2 {
		t.Fatalf("expected one detail per match: %+v", o.TopScorer.Details)
	}
}

func TestTopScorer_TeamGoalsCreditBothTeammates(t *testing.T) {
	matches := []match.Match{
		m2v2(1, 1, 2, 3, 4, 4, 1),
	}
	o := Compute(matches, names())
	if o.TopScorer == nil || o.TopScorer.Goals != 4 {
		t.Fatalf("expected leading pair credited with 4 team goals: %+v", o.TopScorer)
	}
	// Both winning teammates have identical totals; the stable sort keeps
	// first-appearance order, so team 1's first slot leads.
	if o.TopScorer.Name != "Ana" {
		t.Fatalf("unexpected leader: %+v", o.TopScorer)
	}
}

func TestTopScorer_NilWhenNobodyScored(t *testing.T) {
	matches := []match.Match{m1v1(1, 1, 2, 0, 0)}
	o := Compute(matches, names())
	if o.TopScorer != nil {
		t.Fatalf("goalless datasets have no top scorer: %+v", o.TopScorer)
	}
}

func TestLatestMatch(t *testing.T) {
	matches := []match.Match{
		m1v1(1, 1, 2, 2, 0),
		m1v1(5, 3, 4, 1, 3),
		m1v1(3, 1, 3, 0, 0),
	}
	o := Compute(matches, names())
	if o.LatestMatch == nil {
		t.Fatal("expected a latest match")
	}
	if o.LatestMatch.Team1 != "Cleo" || o.LatestMatch.Team2 != "Dev" {
		t.Fatalf("expected the newest match: %+v", o.LatestMatch)
	}
	if o.LatestMatch.Score1 != 1 || o.LatestMatch.Score2 != 3 || !o.LatestMatch.IsComplete {
		t.Fatalf("unexpected summary: %+v", o.LatestMatch)
	}
	if o.LatestMatch.Date != base.AddDate(0, 0, 5).Format("2006-01-02 15:04") {
		t.Fatalf("unexpected date format: %q", o.LatestMatch.Date)
	}
}

func TestHighestScoring_MostRecentWinsTies(t *testing.T) {
	matches := []match.Match{
		m1v1(1, 1, 2, 3, 2), // 5 goals, older
		m1v1(4, 3, 4, 4, 1), // 5 goals, newer
		m1v1(2, 1, 3, 1, 0),
	}
	o := Compute(matches, names())
	if o.HighestScoring == nil {
		t.Fatal("expected a highest scoring match")
	}
	if o.HighestScoring.TotalGoals != 5 || o.HighestScoring.Team1 != "Cleo" {
		t.Fatalf("expected the newer 5-goal match: %+v", o.HighestScoring)
	}
}

func TestCurrentStreak(t *testing.T) {
	// Ana wins the three most recent decided matches.
	matches := []match.Match{
		m1v1(1, 1, 2, 0, 1), // old loss, breaks any longer run
		m1v1(2, 1, 3, 2, 0),
		m1v1(3, 1, 4, 3, 1),
		m1v1(4, 2, 3, 1, 1), // draw, credits nobody
		m1v1(5, 1, 2, 1, 0),
	}
	o := Compute(matches, names())
	if o.CurrentStreak == nil {
		t.Fatal("expected a win streak")
	}
	if o.CurrentStreak.Player != "Ana" || o.CurrentStreak.Wins != 3 {
		t.Fatalf("unexpected streak: %+v", o.CurrentStreak)
	}
	if len(o.CurrentStreak.Matches) != 3 {
		t.Fatalf("expected one detail per streak win: %+v", o.CurrentStreak.Matches)
	}
	if o.CurrentStreak.LastMatch != base.AddDate(0, 0, 5).Format("2006-01-02") {
		t.Fatalf("expected the newest win as last match, got %q", o.CurrentStreak.LastMatch)
	}
	if o.CurrentStreak.MatchType != "1v1/2v2" {
		t.Fatalf("streaks span both formats: %+v", o.CurrentStreak)
	}
}

func TestBestDefense_RequiresThreeMatches(t *testing.T) {
	// Bram concedes nothing but has only two matches; Ana qualifies with
	// three.
	matches := []match.Match{
		m1v1(1, 2, 3, 1, 0),
		m1v1(2, 2, 4, 2, 0),
		m1v1(3, 1, 3, 1, 1),
		m1v1(4, 1, 4, 0, 0),
		m1v1(5, 1, 3, 2, 1),
	}
	o := Compute(matches, names())
	if o.BestDefense == nil {
		t.Fatal("expected a best defense record")
	}
	if o.BestDefense.Player != "Ana" {
		t.Fatalf("two-match samples must not qualify: %+v", o.BestDefense)
	}
	if o.BestDefense.GoalsAgainst != 2 || o.BestDefense.Matches != 3 {
		t.Fatalf("unexpected record: %+v", o.BestDefense)
	}
	if o.BestDefense.Average != 0.67 {
		t.Fatalf("expected average 0.67, got %v", o.BestDefense.Average)
	}
}

func TestBestDefense_NilBelowThreshold(t *testing.T) {
	matches := []match.Match{
		m1v1(1, 1, 2, 1, 0),
		m1v1(2, 1, 2, 0, 0),
	}
	o := Compute(matches, names())
	if o.BestDefense != nil {
		t.Fatalf("nobody has three matches yet: %+v", o.BestDefense)
	}
}

func TestCleanSheets(t *testing.T) {
	// Ana: 2 clean sheets in 4 matches (50%). Cleo: 1 in 2.
	matches := []match.Match{
		m1v1(1, 1, 2, 2, 0),
		m1v1(2, 1, 3, 1, 0),
		m1v1(3, 1, 4, 0, 1),
		m1v1(4, 1, 3, 2, 2),
	}
	o := Compute(matches, names())
	if o.CleanSheets == nil {
		t.Fatal("expected a clean sheets record")
	}
	if o.CleanSheets.Player != "Ana" || o.CleanSheets.Count != 2 {
		t.Fatalf("unexpected leader: %+v", o.CleanSheets)
	}
	if o.CleanSheets.Percentage != 50.0 {
		t.Fatalf("expected 50.0%%, got %v", o.CleanSheets.Percentage)
	}
	if len(o.CleanSheets.Matches) != 2 {
		t.Fatalf("expected one entry per clean sheet: %+v", o.CleanSheets.Matches)
	}
}

func TestCleanSheets_PercentageTiebreak(t *testing.T) {
	// Both have one clean sheet; Dev earned it in a single match (100%),
	// Ana in two (50%).
	matches := []match.Match{
		m1v1(1, 1, 2, 1, 0),
		m1v1(2, 1, 3, 0, 2),
		m1v1(3, 4, 3, 3, 0),
	}
	o := Compute(matches, names())
	if o.CleanSheets == nil || o.CleanSheets.Player != "Dev" {
		t.Fatalf("expected the higher percentage to lead: %+v", o.CleanSheets)
	}
}
