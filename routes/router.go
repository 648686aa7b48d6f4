package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/PatelKrish-16/golazo/internal/match"
	"github.com/PatelKrish-16/golazo/internal/overview"
	"github.com/PatelKrish-16/golazo/internal/player"
	"github.com/PatelKrish-16/golazo/internal/standing"
)

// SetupRoutes wires the gin engine: CORS, swagger and the API feature
// groups.
func SetupRoutes(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	playerRepo := player.RegisterPlayerRoutes(api, db)
	match.RegisterMatchRoutes(api, db, playerRepo)
	standing.RegisterStandingRoutes(api, db, playerRepo)
	overview.RegisterOverviewRoutes(api, db, playerRepo)

	return r
}
