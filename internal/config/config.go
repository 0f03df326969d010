package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr     string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel     slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir       string     `env:"SPA_DIR" envDefault:"../web/dist"`
	GeometrySeed int64      `env:"GEOMETRY_SEED" envDefault:"1"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
