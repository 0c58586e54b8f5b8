package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/humspot/api-go/config"
	"github.com/humspot/api-go/ingest"
	"github.com/humspot/api-go/mail"
	"github.com/humspot/api-go/routes"
	"github.com/joho/godotenv"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Initialize database
	db := config.InitDB()

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	mailer := mail.NewSMTPMailer(config.GetMailConfig())

	// Initialize routes
	routes.SetupRoutes(r, db, mailer)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Scheduled scrapers feed events back through the public API
	if os.Getenv("INGEST_ENABLED") == "true" {
		runner := ingest.NewRunnerFromEnv("http://localhost:" + port)
		go runner.Start(context.Background())
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
