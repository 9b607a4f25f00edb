package controllers

import (
	"net/http"
	"time"

	"github.com/singhAyush18/progress-tracker/helpers"
	"github.com/singhAyush18/progress-tracker/services"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) string {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return ""
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
		return ""
	}
	return claims.UserID
}

// GetInsights returns the six-category AI insight report. The endpoint
// never 500s because the model is unavailable; it degrades to the
// deterministic fallback instead.
func GetInsights(insightSvc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		user, err := services.GetUserByID(userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		tasks, err := services.GetTasksByUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		report := insightSvc.GenerateInsights(c.Request.Context(), *user, tasks)
		c.JSON(http.StatusOK, report)
	}
}

// GetStudyStats returns totals, streaks and the current month's progress.
func GetStudyStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		tasks, err := services.GetTasksByUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		stats := services.BuildStudyStats(tasks)
		now := time.Now()

		avgTaskSeconds := 0
		if len(tasks) > 0 {
			avgTaskSeconds = stats.Totals.Seconds / len(tasks)
		}

		monthKey := now.Format("2006-01")
		monthTasks := 0
		monthSeconds := 0
		if b, ok := stats.TimeIntervals.Monthly[monthKey]; ok {
			monthTasks = b.Tasks
			monthSeconds = b.Seconds
		}

		c.JSON(http.StatusOK, gin.H{
			"totalTasks":          stats.Totals.Tasks,
			"totalStudyHours":     stats.Totals.Hours,
			"averageTaskDuration": services.FormatDuration(avgTaskSeconds),
			"productivityScore":   stats.ProductivityScore,
			"consistencyLevel":    stats.ConsistencyLevel,
			"studyStreak":         services.CurrentStreak(tasks, now),
			"maxStreak":           services.MaxStreak(tasks),
			"monthlyProgress": gin.H{
				"month":      now.Month().String(),
				"totalTasks": monthTasks,
				"totalHours": float64(monthSeconds) / 3600,
			},
		})
	}
}
