package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	Env      string
	LogLevel zapcore.Level
}

func Load() (*Config, error) {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	levelName := os.Getenv("LOG_LEVEL")
	if levelName == "" {
		levelName = "info"
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", levelName, err)
	}

	return &Config{
		Env:      env,
		LogLevel: level,
	}, nil
}
