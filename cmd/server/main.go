package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/QianfengWen/CSC316/internal/api"
	"github.com/QianfengWen/CSC316/internal/config"
	"github.com/QianfengWen/CSC316/internal/database"
	"github.com/QianfengWen/CSC316/internal/repository"
	"github.com/QianfengWen/CSC316/internal/service"
	"github.com/QianfengWen/CSC316/internal/view"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// A missing dataset is fatal to the map core only: the server still
	// comes up and serves its health endpoint.
	var mapService *service.MapService
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Printf("[Server] Dataset unavailable, map disabled: %v", err)
	} else {
		defer database.Close()

		repo := repository.NewRestaurantRepository(database.GetDB())
		svc, err := service.NewMapService(repo, view.TimerScheduler{})
		if err != nil {
			log.Printf("[Server] Failed to build map service, map disabled: %v", err)
		} else {
			mapService = svc
		}
	}

	router := api.SetupRouter(mapService)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
