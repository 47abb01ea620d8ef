package routes

import (
	"github.com/DevAnseSenior/daily-diet/controllers"
	"github.com/DevAnseSenior/daily-diet/middlewares"
	"github.com/DevAnseSenior/daily-diet/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	mealCtl := controllers.NewMealController(services.NewMealService(db))
	metricsCtl := controllers.NewMetricsController(services.NewMetricsService(db))

	meals := r.Group("/meals")
	{
		// Creation is the one endpoint reachable without a session; it
		// mints the cookie when needed.
		meals.POST("", mealCtl.CreateMeal)

		scoped := meals.Group("")
		scoped.Use(middlewares.SessionMiddleware())
		{
			scoped.GET("", mealCtl.ListMeals)
			scoped.GET("/metrics", metricsCtl.GetMealMetrics)
			scoped.GET("/:id", mealCtl.GetMeal)
			scoped.PUT("/:id", mealCtl.UpdateMeal)
			scoped.DELETE("/:id", mealCtl.DeleteMeal)
		}
	}

	return r
}
