package main

import (
	"log"

	"plant-store/config"
	"plant-store/controllers"
	_ "plant-store/docs"
	"plant-store/middleware"
	"plant-store/repositories"
	"plant-store/routes"
	"plant-store/services"

	"github.com/gin-gonic/gin"
)

// @title Plant Store API
// @version 1.0
// @description CRUD API over the plant inventory.
// @BasePath /
func main() {

	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	cache := config.ConnectRedis(cfg)
	if cache != nil {
		defer cache.Close()
	}

	plantRepo := repositories.NewPlantRepository(db)
	plantService := services.NewPlantService(plantRepo)
	plantCtrl := controllers.NewPlantController(plantService, cache)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, plantCtrl)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
