package standing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PatelKrish-16/golazo/internal/match"
	"github.com/PatelKrish-16/golazo/pkg/responses"
)

// StandingController serves the derived standings tables.
type StandingController struct {
	matchRepo match.MatchRepository
	players   match.PlayerDirectory
}

func NewStandingController(matchRepo match.MatchRepository, players match.PlayerDirectory) *StandingController {
	return &StandingController{matchRepo: matchRepo, players: players}
}

// GetStandings godoc
// @Summary Tournament standings
// @Description Computes the round 1, round 2 and combined tournament tables from completed matches
// @Tags Standings
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Table}
// @Failure 500 {object} responses.ErrorResponse
// @Router /standings [get]
func (sc *StandingController) GetStandings(c *gin.Context) {
	matches, err := sc.matchRepo.GetMatches(match.ListFilter{Status: match.StatusCompleted})
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	names, err := sc.players.PlayerNames()
	if err != nil {
		responses.InternalServerError(c, "Failed to load players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Standings computed successfully", Compute(matches, names))
}
