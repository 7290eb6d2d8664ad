package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Origins the browser frontend is served from during development. Credentials
// stay enabled so the last_question_id cookie survives cross-origin calls.
var allowedOrigins = []string{
	"http://localhost",
	"http://127.0.0.1",
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:3050",
	"http://127.0.0.1:3050",
}

func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
}
