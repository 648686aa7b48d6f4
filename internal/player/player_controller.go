package player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PatelKrish-16/golazo/internal/match"
	"github.com/PatelKrish-16/golazo/pkg/responses"
	"github.com/PatelKrish-16/golazo/pkg/validator"
)

// PlayerController handles player-related HTTP requests.
type PlayerController struct {
	repo      PlayerRepository
	matchRepo match.MatchRepository
}

func NewPlayerController(repo PlayerRepository, matchRepo match.MatchRepository) *PlayerController {
	return &PlayerController{repo: repo, matchRepo: matchRepo}
}

type CreatePlayerRequest struct {
	PlayerName string `json:"player_name" binding:"required,min=2,max=100"`
}

func (pc *PlayerController) completedMatches() ([]match.Match, error) {
	return pc.matchRepo.GetMatches(match.ListFilter{Status: match.StatusCompleted})
}

// CreatePlayer godoc
// @Summary Register a new player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player registration request"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Player name already taken"
// @Failure 500 {object} responses.ErrorResponse
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Validation failed", validator.ParseError(err))
		return
	}

	existing, err := pc.repo.FindPlayerByName(req.PlayerName)
	if err != nil {
		responses.InternalServerError(c, "Failed to check player name")
		return
	}
	if existing != nil {
		responses.Conflict(c, "A player with this name already exists")
		return
	}

	p := &Player{PlayerName: req.PlayerName}
	if err := pc.repo.CreatePlayer(p); err != nil {
		responses.InternalServerError(c, "Failed to create player")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// GetAllPlayers godoc
// @Summary List players
// @Description Lists players ordered by name, with stats derived from completed match history
// @Tags Players
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]PlayerStats}
// @Failure 500 {object} responses.ErrorResponse
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	players, err := pc.repo.GetAllPlayers()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players")
		return
	}
	matches, err := pc.completedMatches()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Players retrieved successfully", BuildStats(players, matches))
}

// GetPlayerByID godoc
// @Summary Get a player by ID
// @Tags Players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=PlayerStats}
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			responses.NotFound(c, "Player")
			return
		}
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	matches, err := pc.completedMatches()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	stats := BuildStats([]Player{*p}, matches)
	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", stats[0])
}

// DeletePlayer godoc
// @Summary Delete a player
// @Description Fails with a conflict if the player has any matches on record
// @Tags Players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Player has associated matches"
// @Router /players/{id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	p, err := pc.repo.DeletePlayer(uint(id))
	if err != nil {
		var conflict *ConflictError
		switch {
		case errors.Is(err, ErrPlayerNotFound):
			responses.NotFound(c, "Player")
		case errors.As(err, &conflict):
			responses.Conflict(c, conflict.Error())
		default:
			responses.InternalServerError(c, "Failed to delete player")
		}
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", p)
}
