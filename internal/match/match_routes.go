package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterMatchRoutes sets up all match-related routes.
func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, players PlayerDirectory) {
	matchRepo := NewGormMatchRepository(db)
	matchController := NewMatchController(matchRepo, players)

	matches := router.Group("/matches")
	{
		matches.POST("", matchController.CreateMatch)
		matches.GET("", matchController.GetMatches)
		matches.GET("/:id", matchController.GetMatchByID)
		matches.PUT("/:id", matchController.UpdateMatch)
		matches.PATCH("/:id/score", matchController.UpdateMatchScore)
		matches.DELETE("/:id", matchController.DeleteMatch)
	}
}
