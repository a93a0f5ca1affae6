package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port              string
	DBPath            string
	JWTSecret         string
	OpenAQAPIKey      string
	OpenWeatherAPIKey string
	FIRMSAPIKey       string
}

// Load 加载配置
func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/cache/cleanmap.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:              port,
		DBPath:            dbPath,
		JWTSecret:         jwtSecret,
		OpenAQAPIKey:      os.Getenv("OPENAQ_API_KEY"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		FIRMSAPIKey:       os.Getenv("FIRMS_API_KEY"),
	}
}
