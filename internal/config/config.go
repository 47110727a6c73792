package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"pubg-tracker/internal/constants"
	"pubg-tracker/internal/domain"
)

type Config struct {
	PUBGAPIKey      string
	DBPath          string
	ServerPort      string
	LogLevel        string
	DefaultPlatform domain.Platform
	CacheTTL        time.Duration
	CooldownPeriod  time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		PUBGAPIKey:     getEnv("PUBG_API_KEY", ""),
		DBPath:         getEnv("DB_PATH", "pubg.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CacheTTL:       getEnvDuration("CACHE_TTL", constants.MatchCacheTTL),
		CooldownPeriod: getEnvDuration("COOLDOWN_PERIOD", constants.DefaultCooldown),
	}

	if cfg.PUBGAPIKey == "" {
		return nil, fmt.Errorf("PUBG_API_KEY is required")
	}

	platform, err := domain.ParsePlatform(getEnv("DEFAULT_PLATFORM", string(domain.PlatformSteam)))
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_PLATFORM: %w", err)
	}
	cfg.DefaultPlatform = platform

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("default_platform", string(cfg.DefaultPlatform)).
		Dur("cache_ttl", cfg.CacheTTL).
		Dur("cooldown_period", cfg.CooldownPeriod).
		Msg("configuration loaded")

	return cfg, nil
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
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
