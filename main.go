package main

import (
	"log"
	"os"

	"github.com/singhAyush18/progress-tracker/config"
	"github.com/singhAyush18/progress-tracker/helpers"
	"github.com/singhAyush18/progress-tracker/routes"
	"github.com/singhAyush18/progress-tracker/services"

	"github.com/gin-gonic/gin"
)

func main() {

	log.Println("Starting application...")

	helpers.SetJWTKey(config.JWTSecret())

	//Connect to mongoDB
	config.InitDB()

	// LLM client built once at startup and injected; insight endpoints
	// fall back to deterministic content when it is unavailable.
	gemini := services.NewGeminiClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	insightSvc := services.NewInsightService(gemini)

	//Init gin router
	r := gin.Default()
	api := r.Group("/api/v1")
	routes.SetupRoutes(api, insightSvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	//Start the server
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
