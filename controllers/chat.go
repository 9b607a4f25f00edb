package controllers

import (
	"net/http"
	"strings"

	"github.com/singhAyush18/progress-tracker/helpers"
	"github.com/singhAyush18/progress-tracker/models"
	"github.com/singhAyush18/progress-tracker/services"

	"github.com/gin-gonic/gin"
)

// ChatWithBot answers free-form study questions. Logged-in users get their
// tasks included as context; anonymous users get general answers.
func ChatWithBot(insightSvc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Message string `json:"message"`
		}
		if err := c.BindJSON(&body); err != nil || strings.TrimSpace(body.Message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}

		var user *models.User
		var tasks []models.Task
		if claimsVal, ok := c.Get("claims"); ok {
			if claims, ok := claimsVal.(*helpers.Claims); ok {
				if u, err := services.GetUserByID(claims.UserID); err == nil {
					user = u
					tasks, _ = services.GetTasksByUser(claims.UserID)
				}
			}
		}

		response, err := insightSvc.Chat(c.Request.Context(), user, tasks, body.Message)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get response from chatbot."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": response})
	}
}
