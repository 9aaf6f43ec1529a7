package main

import (
	"log"
	"net/http"

	"chatbot-backend/config"
	"chatbot-backend/database"
	"chatbot-backend/handlers"
	"chatbot-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// corsMiddleware allows the browser frontend to call the API from any origin
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func main() {
	godotenv.Load()

	cfg := config.LoadConfig()

	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	llmService := services.NewLLMService(cfg)
	weatherService := services.NewWeatherService(cfg)
	cryptoService := services.NewCryptoService(cfg)
	newsService := services.NewNewsService(cfg)
	chatService := services.NewChatService(cfg, llmService, weatherService, cryptoService, newsService)

	chatHandler := handlers.NewChatHandler(chatService)

	r := gin.Default()
	r.Use(corsMiddleware())

	api := r.Group("/api")
	{
		api.POST("/chat", chatHandler.Chat)
		api.POST("/system-prompt", chatHandler.UpdateSystemPrompt)
		api.GET("/system-prompt", chatHandler.GetSystemPrompt)
		api.GET("/history", chatHandler.GetHistory)
		api.GET("/health", chatHandler.HealthCheck)
	}

	log.Printf("Starting chatbot backend on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
