package routes

import (
	"net/http"

	"quizbank/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, questionHandler *handlers.QuestionHandler) {
	// Question CRUD routes
	questions := router.Group("/question")
	{
		questions.POST("/", questionHandler.CreateQuestion)
		questions.GET("/", questionHandler.ListQuestions)
		questions.GET("/:id", questionHandler.GetQuestion)
		questions.PATCH("/:id", questionHandler.UpdateQuestion)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	// Quiz flow routes
	router.POST("/add_bulk_questions/", questionHandler.ImportQuestions)
	router.GET("/random_question/", questionHandler.RandomQuestion)
	router.POST("/check_answer/", questionHandler.CheckAnswer)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
