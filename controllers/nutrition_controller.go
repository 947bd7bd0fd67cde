package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/RaulSimioni/Nutrimath/config"
	"github.com/RaulSimioni/Nutrimath/services"

	"github.com/gin-gonic/gin"
)

// GET /nutrition/weight-gain?total_calories=3000
// Stateless estimate so the UI can run hypothetical calorie numbers.
func CalculateWeightGain(c *gin.Context) {
	raw := c.Query("total_calories")
	totalCalories, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(totalCalories) || totalCalories < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_calories must be a non-negative number"})
		return
	}

	svc := services.NewNutritionService(config.DB, nil)
	out := svc.EstimateWeightGain(totalCalories)
	c.JSON(http.StatusOK, gin.H{
		"weight_gain_grams": out.WeightGainGrams,
		"weight_gain_kg":    out.WeightGainKg,
	})
}
