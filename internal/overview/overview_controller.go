package overview

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PatelKrish-16/golazo/internal/match"
	"github.com/PatelKrish-16/golazo/pkg/responses"
)

// OverviewController serves the derived tournament overview.
type OverviewController struct {
	matchRepo match.MatchRepository
	players   match.PlayerDirectory
}

func NewOverviewController(matchRepo match.MatchRepository, players match.PlayerDirectory) *OverviewController {
	return &OverviewController{matchRepo: matchRepo, players: players}
}

// GetOverview godoc
// @Summary Tournament overview
// @Description Derives progress, goal stats, top scorer, latest and highest-scoring match, current win streak, best defense and clean sheets from completed matches
// @Tags Overview
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Overview}
// @Failure 500 {object} responses.ErrorResponse
// @Router /overview [get]
func (oc *OverviewController) GetOverview(c *gin.Context) {
	matches, err := oc.matchRepo.GetMatches(match.ListFilter{Status: match.StatusCompleted})
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	names, err := oc.players.PlayerNames()
	if err != nil {
		responses.InternalServerError(c, "Failed to load players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Overview computed successfully", Compute(matches, names))
}
