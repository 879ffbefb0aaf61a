package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT"          envDefault:"8080"`
	Addr        string `env:"ADDR"`
	DatabaseURL string `env:"DATABASE_URL"`
	GinMode     string `env:"GIN_MODE"      envDefault:"release"`
	ResultsPush bool   `env:"RESULTS_PUSH"  envDefault:"true"`
}

func Default() Config {
	return Config{
		Port:        "8080",
		GinMode:     "release",
		ResultsPush: true,
	}
}

// Load reads the configuration from the environment, falling back to
// Default when any variable fails to parse.
func Load() Config {
	cfg, err := Parse()
	if err != nil {
		log.Printf("config parse failed, using defaults error=%v", err)
		return Default()
	}
	return cfg
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ListenAddr is ADDR when set, otherwise all interfaces on PORT.
func (c Config) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}
