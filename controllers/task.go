package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/singhAyush18/progress-tracker/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	durationPattern = regexp.MustCompile(`^\d+:\d{2}:\d{2}$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	yearPattern     = regexp.MustCompile(`^\d{4}$`)
)

type taskInput struct {
	Date     string   `json:"date"`
	Tasks    []string `json:"tasks"`
	Duration string   `json:"duration"`
}

func (in taskInput) validate() string {
	if !datePattern.MatchString(in.Date) {
		return "Date is required (YYYY-MM-DD)"
	}
	if len(in.Tasks) == 0 {
		return "At least one task is required"
	}
	if !durationPattern.MatchString(in.Duration) {
		return "Duration must be in HH:MM:SS format"
	}
	return ""
}

func CreateTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body taskInput
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task payload"})
			return
		}
		if msg := body.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		task, err := services.CreateTask(userID, body.Date, body.Tasks, body.Duration)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

func GetTasks() gin.HandlerFunc {
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
		c.JSON(http.StatusOK, tasks)
	}
}

func UpdateTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body taskInput
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task payload"})
			return
		}
		if msg := body.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		task, err := services.UpdateTask(userID, c.Param("id"), body.Date, body.Tasks, body.Duration)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

func DeleteTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		if err := services.DeleteTask(userID, c.Param("id")); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
	}
}

// GetYearlyStats returns a zero-filled per-year projection. Defaults to
// the last five years when no range is given.
func GetYearlyStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		toYear := time.Now().Year()
		fromYear := toYear - 4
		if v := c.Query("from"); yearPattern.MatchString(v) {
			fromYear, _ = strconv.Atoi(v)
		}
		if v := c.Query("to"); yearPattern.MatchString(v) {
			toYear, _ = strconv.Atoi(v)
		}
		if fromYear > toYear {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must not be after to"})
			return
		}

		tasks, err := services.GetTasksByUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, services.YearlyProjection(tasks, fromYear, toYear))
	}
}

// GetMonthlyStats returns the fixed 12-month projection for a year.
func GetMonthlyStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		yearParam := c.Param("year")
		if !yearPattern.MatchString(yearParam) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valid year required (YYYY format)"})
			return
		}
		year, _ := strconv.Atoi(yearParam)

		tasks, err := services.GetTasksByUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, services.MonthlyProjection(tasks, year))
	}
}
