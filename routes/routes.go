package routes

import (
	"github.com/RaulSimioni/Nutrimath/controllers"
	"github.com/RaulSimioni/Nutrimath/middlewares"
	"github.com/RaulSimioni/Nutrimath/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.SessionMiddleware())

	hub := services.NewRealtimeHub()
	consumptionCtl := controllers.NewConsumptionController(hub)
	realtimeCtl := controllers.NewRealtimeController(hub)

	auth := r.Group("/auth")
	{
		auth.GET("/me", controllers.Me)
		auth.POST("/logout", controllers.Logout)
	}

	foods := r.Group("/foods")
	{
		foods.GET("", controllers.GetFoods)
		foods.GET("/categories", controllers.GetCategories)
	}

	consumption := r.Group("/consumption")
	{
		consumption.POST("", consumptionCtl.AddConsumption)
		consumption.GET("/today", consumptionCtl.GetTodayConsumption)
		consumption.DELETE("/:id", consumptionCtl.RemoveConsumption)
	}

	r.GET("/nutrition/weight-gain", controllers.CalculateWeightGain)
	r.GET("/ws/summary", realtimeCtl.SummaryWS)

	return r
}
