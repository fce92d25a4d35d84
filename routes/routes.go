package routes

import (
	"plant-store/controllers"
	"plant-store/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, plantCtrl *controllers.PlantController) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, models.HealthResponse{Status: "ok"})
	})

	router.GET("/plants", plantCtrl.GetAllPlants)
	router.POST("/plants", plantCtrl.CreatePlant)

	router.GET("/plants/:id", plantCtrl.GetPlantByID)
	router.PATCH("/plants/:id", plantCtrl.UpdatePlant)
	router.DELETE("/plants/:id", plantCtrl.DeletePlant)
}
