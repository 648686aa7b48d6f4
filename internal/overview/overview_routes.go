package overview

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PatelKrish-16/golazo/internal/match"
)

// RegisterOverviewRoutes sets up the overview route.
func RegisterOverviewRoutes(router *gin.RouterGroup, db *gorm.DB, players match.PlayerDirectory) {
	controller := NewOverviewController(match.NewGormMatchRepository(db), players)
	router.GET("/overview", controller.GetOverview)
}
