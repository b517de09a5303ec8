// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the externally overridable settings for the service.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Database connection settings.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// Load reads configuration from a .env file (if present) and the environment.
// Every setting has a default, so the service starts without any configuration.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .envは任意。存在しなければ環境変数のみ使用する。
		slog.Debug("no .env file loaded", "error", err)
	}

	return &Config{
		Port:       getenv("PORT", "3000"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBName:     getenv("DB_NAME", "accounts"),
	}
}

// DSN builds the MySQL data source name for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// getenv returns the value of key, or fallback when the variable is unset or empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
