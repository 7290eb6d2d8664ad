package main

import (
	"log"

	"quizbank/config"
	"quizbank/handlers"
	"quizbank/middleware"
	"quizbank/models"
	"quizbank/routes"
	"quizbank/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	if err := db.AutoMigrate(&models.Question{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize services
	questionService := services.NewQuestionService(db)

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, questionHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.BindAddress + ":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
