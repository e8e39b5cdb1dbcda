package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultPort                 = "8080"
	DefaultAccessTokenExpiryMin = 30
	DefaultAllowedOrigins       = "http://localhost:5173"
	DefaultMusicAPIBaseURL      = "https://music.youtube.com/youtubei/v1"
	DefaultMusicAPITimeoutSec   = 5
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	AccessTokenSecret  string
	AccessExpiryMin    int
	AllowedOrigins     string
	MusicAPIBaseURL    string
	MusicAPITimeoutSec int
}

// Load reads config/.env.dev or config/.env.prod if present (real environment
// variables take precedence), then resolves every setting. Missing required
// keys are fatal.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := ".env.dev"
	if env == "production" {
		envFile = ".env.prod"
	}
	if path := filepath.Join("config", envFile); fileExists(path) {
		if err := godotenv.Load(path); err != nil {
			log.Warnf("Failed to load %s: %v", path, err)
		}
	}

	return &Config{
		Env:                env,
		Port:               getEnv("PORT", DefaultPort),
		DBURL:              mustGetEnv("DB_URL"),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", DefaultAllowedOrigins),
		MusicAPIBaseURL:    getEnv("MUSIC_API_BASE_URL", DefaultMusicAPIBaseURL),
		MusicAPITimeoutSec: getEnvAsInt("MUSIC_API_TIMEOUT", DefaultMusicAPITimeoutSec),
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, fallback int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Warnf("Invalid value for %s, using default %d", key, fallback)
		return fallback
	}
	return val
}
