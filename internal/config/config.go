// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. A YAML file named by CONFIG_PATH=/path/to/config.yaml or by the
//     --config=/path/to/config.yaml flag. Environment variables still
//     override the values found in the file.
//  2. Environment variables alone, falling back to the env-default tags.
//
// With no file and no variables set the server starts on :3000 and uses
// ./talker.json, so a bare `go run ./cmd/talker-api` just works.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StoragePath is the filesystem path to the talker JSON file.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"talker.json"`

	HTTPServer `yaml:"http_server"`
	Login      `yaml:"login"`
	CORS       `yaml:"cors"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. ":3000".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-default:":3000"`
}

// Login optionally throttles POST /login per client IP.
// A RateLimit of 0 (the default) disables throttling.
type Login struct {
	RateLimit  int           `yaml:"rate_limit" env:"LOGIN_RATE_LIMIT" env-default:"0"`
	RateWindow time.Duration `yaml:"rate_window" env:"LOGIN_RATE_WINDOW" env-default:"1m"`
}

// CORS lists the browser origins allowed to call the API.
// An empty list disables the CORS middleware.
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

// Load reads the config from path, or from the environment only when
// path is empty.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config from env: %w", err)
		}
		return &cfg, nil
	}

	// Verify the file exists before trying to read it, for a clearer
	// message than the one from the YAML decoder.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &cfg, nil
}

// MustLoad resolves the config path from CONFIG_PATH or --config, loads
// it, and exits the process on failure.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}
	return cfg
}
