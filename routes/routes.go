package routes

import (
	"github.com/singhAyush18/progress-tracker/controllers"
	"github.com/singhAyush18/progress-tracker/middleware"
	"github.com/singhAyush18/progress-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.RouterGroup, insightSvc *services.InsightService) {
	router.POST("/auth/signup", controllers.Signup())
	router.POST("/auth/login", controllers.Login())

	// Chat works with or without a logged-in user
	router.POST("/chat", middleware.OptionalAuth(), controllers.ChatWithBot(insightSvc))

	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		// Current user
		protected.GET("/users/me", controllers.GetMe())
		protected.PUT("/users/me", controllers.UpdateMe())
		protected.GET("/users/leaderboard", controllers.GetLeaderboard())

		// Study logs
		protected.POST("/tasks", controllers.CreateTask())
		protected.GET("/tasks", controllers.GetTasks())
		protected.PUT("/tasks/:id", controllers.UpdateTask())
		protected.DELETE("/tasks/:id", controllers.DeleteTask())
		protected.GET("/tasks/monthly-stats/:year", controllers.GetMonthlyStats())
		protected.GET("/tasks/yearly-stats", controllers.GetYearlyStats())

		// Insights / stats
		protected.GET("/tracking/insights", controllers.GetInsights(insightSvc))
		protected.GET("/tracking/stats", controllers.GetStudyStats())
	}
}
