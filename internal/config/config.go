package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultEndpoint = "https://api.smartsheet.com/2.0"
	defaultTimeout  = 30 * time.Second
	defaultEnvFile  = ".env"
)

// Config defines CLI configuration.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Cache CacheConfig `yaml:"cache"`
	Log   LogConfig   `yaml:"log"`
}

type APIConfig struct {
	Token    string        `yaml:"token"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

type CacheConfig struct {
	// Path of the snapshot database. Empty disables caching.
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration in increasing precedence from defaults, an
// optional YAML file, an optional .env file and the environment.
//
// path names the YAML file; when empty SMARTSHEET_CONFIG_PATH is used.
// The .env file is SMARTSHEET_ENV_FILE or ./.env, and it never overrides
// variables already set in the environment. A missing default .env is
// not an error.
func Load(path string) (Config, error) {
	cfg := Config{
		API: APIConfig{
			Endpoint: defaultEndpoint,
			Timeout:  defaultTimeout,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path == "" {
		path = os.Getenv("SMARTSHEET_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	dotenv, err := readEnvFile()
	if err != nil {
		return Config{}, err
	}
	getenv := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}

	if token := getenv("SMARTSHEET_ACCESS_TOKEN"); token != "" {
		cfg.API.Token = token
	}
	if endpoint := getenv("SMARTSHEET_API_ENDPOINT"); endpoint != "" {
		cfg.API.Endpoint = endpoint
	}
	if timeoutStr := getenv("SMARTSHEET_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SMARTSHEET_TIMEOUT: %w", err)
		}
		cfg.API.Timeout = timeout
	}
	if cachePath := getenv("SMARTSHEET_CACHE_PATH"); cachePath != "" {
		cfg.Cache.Path = cachePath
	}
	if level := getenv("SMARTSHEET_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

// Validate reports configuration that cannot be used to call the API.
func (c Config) Validate() error {
	if strings.TrimSpace(c.API.Token) == "" {
		return errors.New("access token is not set: use SMARTSHEET_ACCESS_TOKEN or api.token")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s", c.API.Timeout)
	}
	return nil
}

// SlogLevel maps Log.Level to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func readEnvFile() (map[string]string, error) {
	path, explicit := os.LookupEnv("SMARTSHEET_ENV_FILE")
	if !explicit || path == "" {
		path = defaultEnvFile
		explicit = false
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return values, nil
}
