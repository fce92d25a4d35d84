package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"plant-store/models"
	"plant-store/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const plantListCacheKey = "plants_list"

type PlantController struct {
	plantService *services.PlantService
	cache        *redis.Client
}

// NewPlantController wires the handlers to their service. A nil cache
// disables response caching.
func NewPlantController(plantService *services.PlantService, cache *redis.Client) *PlantController {
	return &PlantController{
		plantService: plantService,
		cache:        cache,
	}
}

// @Summary List all plants
// @Description Get all plants in insertion order
// @Tags Plants
// @Produce json
// @Success 200 {array} models.Plant
// @Router /plants [get]
func (ctrl *PlantController) GetAllPlants(c *gin.Context) {
	ctx := c.Request.Context()

	if ctrl.cache != nil {
		cached, err := ctrl.cache.Get(ctx, plantListCacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	plants, err := ctrl.plantService.ListPlants(ctx)
	if err != nil {
		serverError(c, "list plants", err)
		return
	}

	if ctrl.cache != nil {
		if jsonData, err := json.Marshal(plants); err == nil {
			ctrl.cache.Set(ctx, plantListCacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, plants)
}

// @Summary Create a plant
// @Description Create a plant from name, image and price; stock defaults to true
// @Tags Plants
// @Accept json
// @Produce json
// @Param plant body models.CreatePlantRequest true "Plant to create"
// @Success 201 {object} models.Plant
// @Failure 400 {object} models.ErrorResponse
// @Router /plants [post]
func (ctrl *PlantController) CreatePlant(c *gin.Context) {
	var req models.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	plant, err := ctrl.plantService.CreatePlant(c.Request.Context(), req)
	if err != nil {
		serverError(c, "create plant", err)
		return
	}

	ctrl.invalidatePlantCache(c)
	c.JSON(http.StatusCreated, plant)
}

// @Summary Get a plant
// @Description Get one plant by its id
// @Tags Plants
// @Produce json
// @Param id path int true "Plant ID"
// @Success 200 {object} models.Plant
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id} [get]
func (ctrl *PlantController) GetPlantByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid plant ID"})
		return
	}

	plant, err := ctrl.plantService.GetPlantByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Plant not found"})
			return
		}
		serverError(c, "get plant", err)
		return
	}

	c.JSON(http.StatusOK, plant)
}

// @Summary Update a plant's stock flag
// @Description Partially update a plant; only is_in_stock may change
// @Tags Plants
// @Accept json
// @Produce json
// @Param id path int true "Plant ID"
// @Param plant body models.UpdatePlantRequest true "Fields to update"
// @Success 200 {object} models.Plant
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id} [patch]
func (ctrl *PlantController) UpdatePlant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid plant ID"})
		return
	}

	var req models.UpdatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	plant, err := ctrl.plantService.UpdatePlant(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Plant not found"})
			return
		}
		serverError(c, "update plant", err)
		return
	}

	ctrl.invalidatePlantCache(c)
	c.JSON(http.StatusOK, plant)
}

// @Summary Delete a plant
// @Description Permanently remove a plant by its id
// @Tags Plants
// @Produce json
// @Param id path int true "Plant ID"
// @Success 204 "No Content"
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id} [delete]
func (ctrl *PlantController) DeletePlant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid plant ID"})
		return
	}

	if err := ctrl.plantService.DeletePlant(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Plant not found"})
			return
		}
		serverError(c, "delete plant", err)
		return
	}

	ctrl.invalidatePlantCache(c)
	c.Status(http.StatusNoContent)
}

func (ctrl *PlantController) invalidatePlantCache(c *gin.Context) {
	if ctrl.cache == nil {
		return
	}
	ctrl.cache.Del(c.Request.Context(), plantListCacheKey)
}

// serverError logs the cause and answers with a fixed body; internal detail
// never reaches the client.
func serverError(c *gin.Context, op string, err error) {
	log.Printf("Failed to %s: %v", op, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
}
