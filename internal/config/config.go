package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	AuthModeAllowAny = "allow-any"
	AuthModeJWT      = "jwt"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	AuthMode      string
	JWTSecret     string

	AllowedOrigins []string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	config := &Config{
		Port:           getEnv("PORT", "3000"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGODB_DATABASE", "notably"),
		AuthMode:       getEnv("AUTH_MODE", AuthModeAllowAny),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AllowedOrigins: allowedOrigins(),
	}

	switch config.AuthMode {
	case AuthModeAllowAny:
	case AuthModeJWT:
		if config.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET is required when AUTH_MODE is %q", AuthModeJWT)
		}
	default:
		return nil, fmt.Errorf("unknown AUTH_MODE %q", config.AuthMode)
	}

	return config, nil
}

func allowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
