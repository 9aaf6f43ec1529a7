package database

import (
	"fmt"
	"log"

	"chatbot-backend/config"
	"chatbot-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB(cfg *config.Config) error {
	var err error

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = DB.AutoMigrate(&models.Conversation{})
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database initialized successfully")
	return nil
}

// SaveConversation persists one chat exchange
func SaveConversation(conv *models.Conversation) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	if err := DB.Create(conv).Error; err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return nil
}

// RecentConversations returns the most recent chat exchanges, newest first
func RecentConversations(limit int) ([]models.Conversation, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}
	var conversations []models.Conversation
	err := DB.Order("created_at DESC").Limit(limit).Find(&conversations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}
	return conversations, nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
