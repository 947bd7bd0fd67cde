package controllers

import (
	"net/http"

	"github.com/RaulSimioni/Nutrimath/config"
	"github.com/RaulSimioni/Nutrimath/services"

	"github.com/gin-gonic/gin"
)

// GET /foods?search=banana&category=Frutas
// search takes precedence over category; with neither, the full catalog.
func GetFoods(c *gin.Context) {
	foodSvc := services.NewFoodService(config.DB)

	if q := c.Query("search"); q != "" {
		c.JSON(http.StatusOK, foodSvc.Search(q))
		return
	}
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, foodSvc.ListByCategory(category))
		return
	}
	c.JSON(http.StatusOK, foodSvc.ListAll())
}

// GET /foods/categories
func GetCategories(c *gin.Context) {
	foodSvc := services.NewFoodService(config.DB)
	c.JSON(http.StatusOK, foodSvc.ListCategories())
}
