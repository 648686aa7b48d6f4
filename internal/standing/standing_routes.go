package standing

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PatelKrish-16/golazo/internal/match"
)

// RegisterStandingRoutes sets up the standings routes.
func RegisterStandingRoutes(router *gin.RouterGroup, db *gorm.DB, players match.PlayerDirectory) {
	controller := NewStandingController(match.NewGormMatchRepository(db), players)
	router.GET("/standings", controller.GetStandings)
}
