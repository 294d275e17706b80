package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Projection defaults. DefaultOccupancyStep is the percentage-point
	// step applied in years 2-10 when a scenario leaves an occupancy step
	// entry unset. The engine itself carries no default.
	DefaultOccupancyStep float64
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "proforma"),
		DBPassword: getEnv("DB_PASSWORD", "proforma"),
		DBName:     getEnv("DB_NAME", "proforma"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Parse the default occupancy step
	stepStr := getEnv("DEFAULT_OCCUPANCY_STEP", "0")
	step, err := strconv.ParseFloat(stepStr, 64)
	if err != nil {
		log.Printf("Warning: invalid DEFAULT_OCCUPANCY_STEP value '%s', falling back to 0\n", stepStr)
		step = 0
	}
	config.DefaultOccupancyStep = step

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
