package match

import (
	"fmt"
	"time"
)

// ValidationError describes a rejected match submission with enough context
// to build a precise user-facing message.
type ValidationError struct {
	Field     string
	Message   string
	PlayerIDs []uint // ids involved, e.g. the missing players
}

func (e *ValidationError) Error() string {
	if len(e.PlayerIDs) > 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.PlayerIDs)
	}
	return e.Message
}

// PlayerDirectory is the lookup the match package needs from the player
// store: which ids exist, and their display names.
type PlayerDirectory interface {
	ExistingPlayerIDs() (map[uint]struct{}, error)
	PlayerNames() (map[uint]string, error)
}

// ValidateAndNormalize checks a proposed match against the roster, goal and
// date rules and fills in the derived fields (scheduled date, status,
// result) in place. It has no side effects beyond mutating m.
//
// Completed matches with a past match_date pass: recording historical
// results after the fact is a normal workflow. Only matches that resolve to
// SCHEDULED reject past dates.
func ValidateAndNormalize(m *Match, existing map[uint]struct{}, now time.Time) error {
	return validateAndNormalize(m, existing, &now)
}

// ValidateAndNormalizeEdit applies the same roster and goal rules to a full
// edit of an existing match. Edits never reject past dates: clearing the
// goals of a backfilled match reverts it to SCHEDULED, and its date has
// usually already passed.
func ValidateAndNormalizeEdit(m *Match, existing map[uint]struct{}) error {
	return validateAndNormalize(m, existing, nil)
}

func validateAndNormalize(m *Match, existing map[uint]struct{}, now *time.Time) error {
	switch m.MatchType {
	case TypeTwoVTwo:
		if m.Team1Player2ID == nil || m.Team2Player2ID == nil {
			return &ValidationError{
				Field:   "team1_player2_id",
				Message: "2v2 matches require all player positions to be filled",
			}
		}
	case TypeOneVOne:
		if m.Team1Player2ID != nil || m.Team2Player2ID != nil {
			return &ValidationError{
				Field:   "team1_player2_id",
				Message: "1v1 matches should not have secondary players",
			}
		}
	default:
		return &ValidationError{Field: "match_type", Message: "match type must be 1v1 or 2v2"}
	}

	roster := append(m.Team1().PlayerIDs, m.Team2().PlayerIDs...)
	seen := make(map[uint]struct{}, len(roster))
	for _, id := range roster {
		if _, dup := seen[id]; dup {
			return &ValidationError{
				Field:     "players",
				Message:   "Cannot use the same player multiple times in a match",
				PlayerIDs: []uint{id},
			}
		}
		seen[id] = struct{}{}
	}

	var missing []uint
	for _, id := range roster {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{
			Field:     "players",
			Message:   "One or more players not found",
			PlayerIDs: missing,
		}
	}

	if (m.Team1Goals != nil && *m.Team1Goals < 0) || (m.Team2Goals != nil && *m.Team2Goals < 0) {
		return &ValidationError{Field: "goals", Message: "Goals cannot be negative"}
	}

	if m.ScheduledDate.IsZero() {
		m.ScheduledDate = m.MatchDate
	}

	if m.Completed() {
		m.Status = StatusCompleted
		result := DeriveResult(*m.Team1Goals, *m.Team2Goals)
		m.Result = &result
	} else {
		m.Status = StatusScheduled
		m.Result = nil
		// A half-recorded score never survives; a scheduled match carries
		// no goals at all.
		m.Team1Goals = nil
		m.Team2Goals = nil
		if now != nil && m.MatchDate.Before(*now) {
			return &ValidationError{
				Field:   "match_date",
				Message: "Scheduled matches cannot be in the past",
			}
		}
	}

	return nil
}

// ApplyScore records a final score on an existing match. It reuses the
// result derivation rule but, unlike a full submission, does not
// re-validate the roster or dates.
func ApplyScore(m *Match, team1Goals, team2Goals int) error {
	if team1Goals < 0 || team2Goals < 0 {
		return &ValidationError{Field: "goals", Message: "Goals cannot be negative"}
	}
	m.Team1Goals = &team1Goals
	m.Team2Goals = &team2Goals
	m.Status = StatusCompleted
	result := DeriveResult(team1Goals, team2Goals)
	m.Result = &result
	return nil
}
