package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	BindAddress string
	DatabaseURL string
}

func Load() *Config {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		BindAddress: getEnv("BIND_ADDRESS", ""),
		DatabaseURL: getEnv("DATABASE_URL", "quiz.db"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// InitDB opens the database named by DATABASE_URL. A postgres DSN selects the
// postgres driver; anything else is treated as a SQLite file path.
func InitDB(cfg *Config) (*gorm.DB, error) {
	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") ||
		strings.HasPrefix(cfg.DatabaseURL, "postgresql://") ||
		strings.HasPrefix(cfg.DatabaseURL, "host=") {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
}
