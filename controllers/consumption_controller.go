package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RaulSimioni/Nutrimath/config"
	"github.com/RaulSimioni/Nutrimath/middlewares"
	"github.com/RaulSimioni/Nutrimath/services"

	"github.com/gin-gonic/gin"
)

type ConsumptionController struct {
	Hub *services.RealtimeHub
}

func NewConsumptionController(hub *services.RealtimeHub) *ConsumptionController {
	return &ConsumptionController{Hub: hub}
}

type AddConsumptionInput struct {
	FoodID           uint `json:"food_id" binding:"required"`
	PortionSizeGrams int  `json:"portion_size_grams" binding:"required,min=1"`
}

// POST /consumption
func (cc *ConsumptionController) AddConsumption(c *gin.Context) {
	var input AddConsumptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewNutritionService(config.DB, cc.Hub)
	calories, err := svc.RecordConsumption(middlewares.CurrentUserID(c), input.FoodID, input.PortionSizeGrams)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidPortion):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "calories": calories})
}

// GET /consumption/today
func (cc *ConsumptionController) GetTodayConsumption(c *gin.Context) {
	svc := services.NewNutritionService(config.DB, cc.Hub)
	summary, err := svc.TodaySummary(middlewares.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DELETE /consumption/:id
func (cc *ConsumptionController) RemoveConsumption(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid consumption id"})
		return
	}

	svc := services.NewNutritionService(config.DB, cc.Hub)
	if err := svc.RemoveConsumption(middlewares.CurrentUserID(c), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
