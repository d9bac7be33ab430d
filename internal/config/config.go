package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DatabaseDSN   string
	JWTSecret     string
	SessionTTL    time.Duration
	UploadDir     string
	AvatarBaseURL string
	DefaultAvatar string
}

// Load reads configuration from the environment, picking up a local .env
// file when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		SessionTTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/avatars"),
		AvatarBaseURL: getEnv("AVATAR_BASE_URL", "/uploads/avatars"),
		DefaultAvatar: getEnv("DEFAULT_AVATAR", "images/profile.svg"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if hours, err := strconv.Atoi(v); err == nil {
		return time.Duration(hours) * time.Hour
	}
	return fallback
}
