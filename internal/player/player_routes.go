package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PatelKrish-16/golazo/internal/match"
)

// RegisterPlayerRoutes sets up all player-related routes and returns the
// repository so other features can reuse it for player lookups.
func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB) PlayerRepository {
	playerRepo := NewGormPlayerRepository(db)
	playerController := NewPlayerController(playerRepo, match.NewGormMatchRepository(db))

	players := router.Group("/players")
	{
		players.POST("", playerController.CreatePlayer)
		players.GET("", playerController.GetAllPlayers)
		players.GET("/:id", playerController.GetPlayerByID)
		players.DELETE("/:id", playerController.DeletePlayer)
	}
	return playerRepo
}
