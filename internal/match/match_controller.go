package match

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PatelKrish-16/golazo/pkg/responses"
	"github.com/PatelKrish-16/golazo/pkg/validator"
)

// MatchController handles match-related HTTP requests.
type MatchController struct {
	repo    MatchRepository
	players PlayerDirectory
}

func NewMatchController(repo MatchRepository, players PlayerDirectory) *MatchController {
	return &MatchController{repo: repo, players: players}
}

// --- DTOs ---

type CreateMatchRequest struct {
	Round          string     `json:"round" binding:"required"`
	MatchType      Type       `json:"match_type" binding:"required,oneof=1v1 2v2"`
	Team1Player1ID uint       `json:"team1_player1_id" binding:"required"`
	Team1Player2ID *uint      `json:"team1_player2_id"`
	Team2Player1ID uint       `json:"team2_player1_id" binding:"required"`
	Team2Player2ID *uint      `json:"team2_player2_id"`
	MatchDate      time.Time  `json:"match_date" binding:"required"`
	ScheduledDate  *time.Time `json:"scheduled_date"`
	Team1Goals     *int       `json:"team1_goals"`
	Team2Goals     *int       `json:"team2_goals"`
}

// ScoreUpdateRequest carries a final score. Goal fields are pointers so a
// 0-0 result still binds as "provided".
type ScoreUpdateRequest struct {
	Team1Goals *int `json:"team1_goals" binding:"required"`
	Team2Goals *int `json:"team2_goals" binding:"required"`
}

// MatchResponse is a match with the player slots resolved to display names.
type MatchResponse struct {
	Match
	Team1Player1Name string `json:"team1_player1_name,omitempty"`
	Team1Player2Name string `json:"team1_player2_name,omitempty"`
	Team2Player1Name string `json:"team2_player1_name,omitempty"`
	Team2Player2Name string `json:"team2_player2_name,omitempty"`
}

func (req *CreateMatchRequest) toMatch() *Match {
	m := &Match{
		Round:          req.Round,
		MatchType:      req.MatchType,
		Team1Player1ID: req.Team1Player1ID,
		Team1Player2ID: req.Team1Player2ID,
		Team2Player1ID: req.Team2Player1ID,
		Team2Player2ID: req.Team2Player2ID,
		MatchDate:      req.MatchDate,
		Team1Goals:     req.Team1Goals,
		Team2Goals:     req.Team2Goals,
	}
	if req.ScheduledDate != nil {
		m.ScheduledDate = *req.ScheduledDate
	}
	return m
}

func (mc *MatchController) withNames(m Match, names map[uint]string) MatchResponse {
	resp := MatchResponse{
		Match:            m,
		Team1Player1Name: names[m.Team1Player1ID],
		Team2Player1Name: names[m.Team2Player1ID],
	}
	if m.Team1Player2ID != nil {
		resp.Team1Player2Name = names[*m.Team1Player2ID]
	}
	if m.Team2Player2ID != nil {
		resp.Team2Player2Name = names[*m.Team2Player2ID]
	}
	return resp
}

// --- Handlers ---

// CreateMatch godoc
// @Summary Record a new match
// @Description Validates the roster and goals, derives status/result and persists the match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match creation request"
// @Success 201 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Validation failed", validator.ParseError(err))
		return
	}

	existing, err := mc.players.ExistingPlayerIDs()
	if err != nil {
		responses.InternalServerError(c, "Failed to load players")
		return
	}

	m := req.toMatch()
	if err := ValidateAndNormalize(m, existing, time.Now()); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			responses.BadRequest(c, ve.Error())
			return
		}
		responses.BadRequest(c, err.Error())
		return
	}

	if err := mc.repo.CreateMatch(m); err != nil {
		responses.InternalServerError(c, "Failed to create match")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", m)
}

// GetMatches godoc
// @Summary List matches
// @Description Lists matches newest first, optionally filtered by round, match_type and status
// @Tags Matches
// @Produce json
// @Param round query string false "Round label, e.g. Round 1"
// @Param match_type query string false "1v1 or 2v2"
// @Param status query string false "SCHEDULED, COMPLETED or CANCELLED"
// @Success 200 {object} responses.SuccessResponse{data=[]MatchResponse}
// @Failure 500 {object} responses.ErrorResponse
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	filter := ListFilter{
		Round:     c.Query("round"),
		MatchType: Type(c.Query("match_type")),
		Status:    Status(c.Query("status")),
	}

	matches, err := mc.repo.GetMatches(filter)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	names, err := mc.players.PlayerNames()
	if err != nil {
		responses.InternalServerError(c, "Failed to load players")
		return
	}

	resp := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, mc.withNames(m, names))
	}
	responses.SendSuccess(c, http.StatusOK, "Matches retrieved successfully", resp)
}

// GetMatchByID godoc
// @Summary Get a match by ID
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=MatchResponse}
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	names, err := mc.players.PlayerNames()
	if err != nil {
		responses.InternalServerError(c, "Failed to load players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", mc.withNames(*m, names))
}

// UpdateMatch godoc
// @Summary Update a match
// @Description Full edit; clearing both goal counts reverts the match to SCHEDULED
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body CreateMatchRequest true "Match update request"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{id} [put]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Validation failed", validator.ParseError(err))
		return
	}

	existingMatch, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}

	existing, err := mc.players.ExistingPlayerIDs()
	if err != nil {
		responses.InternalServerError(c, "Failed to load players")
		return
	}

	m := req.toMatch()
	m.ID = existingMatch.ID
	m.CreatedAt = existingMatch.CreatedAt
	if err := ValidateAndNormalizeEdit(m, existing); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	if err := mc.repo.UpdateMatch(m); err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		responses.InternalServerError(c, "Failed to update match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", m)
}

// UpdateMatchScore godoc
// @Summary Record the final score of a match
// @Description Sets the goals, flips the status to COMPLETED and recomputes the result
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param score body ScoreUpdateRequest true "Final score"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{id}/score [patch]
func (mc *MatchController) UpdateMatchScore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	var req ScoreUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Validation failed", validator.ParseError(err))
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}

	if err := ApplyScore(m, *req.Team1Goals, *req.Team2Goals); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	if err := mc.repo.UpdateMatch(m); err != nil {
		responses.InternalServerError(c, "Failed to update match score")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match score updated successfully", m)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	if err := mc.repo.DeleteMatch(uint(id)); err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		responses.InternalServerError(c, "Failed to delete match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}
