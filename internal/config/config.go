package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env            Environment
	LogLevel       string
	ServerPort     string
	MaxBodyBytes   int64
	MaxConcurrent  int64
	RateLimitEvery time.Duration
	RateLimitBurst int
	LimiterSweep   time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// GateConfig controls the input gating that runs before the detector:
// minimum trimmed length and minimum Hangul ratio.
type GateConfig struct {
	MinRunes       int
	MinHangulRatio float64
}

type DetectorConfig struct {
	// LexiconPath optionally points at a YAML file overriding the built-in
	// connective/formal-ending lexicon. Empty means use the default.
	LexiconPath string
}

type Config struct {
	App      AppConfig
	Gate     GateConfig
	Detector DetectorConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	return &Config{
		App: AppConfig{
			Env:            env,
			LogLevel:       getLogLevel(env),
			ServerPort:     getEnv("APP_SERVER_PORT", "8080"),
			MaxBodyBytes:   int64(getEnvInt("APP_MAX_BODY_BYTES", 1<<20)),
			MaxConcurrent:  int64(getEnvInt("APP_MAX_CONCURRENT", 64)),
			RateLimitEvery: time.Duration(getEnvInt("APP_RATE_LIMIT_EVERY_MS", 600)) * time.Millisecond,
			RateLimitBurst: getEnvInt("APP_RATE_LIMIT_BURST", 20),
			LimiterSweep:   time.Duration(getEnvInt("APP_LIMITER_SWEEP_MINUTES", 10)) * time.Minute,
			ReadTimeout:    time.Duration(getEnvInt("APP_READ_TIMEOUT_SECONDS", 10)) * time.Second,
			WriteTimeout:   time.Duration(getEnvInt("APP_WRITE_TIMEOUT_SECONDS", 15)) * time.Second,
			IdleTimeout:    time.Duration(getEnvInt("APP_IDLE_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		Gate: GateConfig{
			MinRunes:       getEnvInt("GATE_MIN_RUNES", 300),
			MinHangulRatio: getEnvFloat("GATE_MIN_HANGUL_RATIO", 0.8),
		},
		Detector: DetectorConfig{
			LexiconPath: getEnv("DETECTOR_LEXICON_PATH", ""),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.Gate.MinRunes < 0 {
		return fmt.Errorf("GATE_MIN_RUNES must not be negative")
	}
	if c.Gate.MinHangulRatio < 0 || c.Gate.MinHangulRatio > 1 {
		return fmt.Errorf("GATE_MIN_HANGUL_RATIO must be in [0, 1]")
	}
	if c.App.MaxConcurrent <= 0 {
		return fmt.Errorf("APP_MAX_CONCURRENT must be positive")
	}
	if c.App.MaxBodyBytes <= 0 {
		return fmt.Errorf("APP_MAX_BODY_BYTES must be positive")
	}
	if c.Detector.LexiconPath != "" {
		if _, err := os.Stat(c.Detector.LexiconPath); err != nil {
			return fmt.Errorf("DETECTOR_LEXICON_PATH: %w", err)
		}
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
