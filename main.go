package main

import (
	"log"

	"github.com/PatelKrish-16/golazo/config"
	_ "github.com/PatelKrish-16/golazo/docs"
	"github.com/PatelKrish-16/golazo/internal/match"
	"github.com/PatelKrish-16/golazo/internal/player"
	"github.com/PatelKrish-16/golazo/routes"
)

// @title Golazo Tournament API
// @version 1.0
// @description Record keeping and statistics for the office football tournament ⚽
// @host localhost:8090
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&player.Player{},
		&match.Match{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
