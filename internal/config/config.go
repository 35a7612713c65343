package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/glucokit/glucokit/internal/logger"
)

type Config struct {
	DB         DBConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Evaluation EvaluationConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Host    string
	Port    string
	Enabled bool
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

// EvaluationConfig controls the periodic evaluation worker. ShortActingHours
// surfaces the 6h-vs-8h decay convention for short/regular insulin; 6 is the
// more common clinical choice and the default.
type EvaluationConfig struct {
	IntervalMinutes  int
	ShortActingHours int
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return n, nil
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	interval, err := getEnvIntOrDefault("EVAL_INTERVAL_MINUTES", 10)
	if err != nil {
		return nil, err
	}
	shortHours, err := getEnvIntOrDefault("SHORT_ACTING_HOURS", 6)
	if err != nil {
		return nil, err
	}
	if shortHours != 6 && shortHours != 8 {
		return nil, fmt.Errorf("SHORT_ACTING_HOURS must be 6 or 8, got %d", shortHours)
	}

	return &Config{
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "glucokit"),
		},
		Redis: RedisConfig{
			Host:    getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:    getEnvOrDefault("REDIS_PORT", "6379"),
			Enabled: getEnvOrDefault("REDIS_ENABLED", "true") == "true",
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
		Evaluation: EvaluationConfig{
			IntervalMinutes:  interval,
			ShortActingHours: shortHours,
		},
	}, nil
}
