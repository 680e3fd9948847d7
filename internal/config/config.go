package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration, loaded from environment variables
// with an optional YAML override file for local development.
type Config struct {
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
	DatabaseURL string `yaml:"database_url"`
	JWKSURL     string `yaml:"jwks_url"`
	CORSOrigins string `yaml:"cors_origins"`
	TablePrefix string `yaml:"table_prefix"`

	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig configures the S3-compatible object store. Local mode points
// the client at a MinIO-style endpoint with path-style addressing.
type StorageConfig struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

// Load builds the configuration from the environment. When CONFIG_FILE names
// a YAML file, its non-empty values override the environment.
func Load() (*Config, error) {
	env := getEnv("ENVIRONMENT", "dev")

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWKSURL:     getEnv("JWKS_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix: getTablePrefix(env),
		Storage: StorageConfig{
			Bucket:   getEnv("STORAGE_BUCKET", "docweld"),
			Region:   getEnv("STORAGE_REGION", "eu-central-1"),
			Endpoint: getEnv("STORAGE_ENDPOINT", ""),
			Local:    getEnv("STORAGE_LOCAL", "") == "true",
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// applyFile overlays values from a YAML config file onto cfg
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if overlay.Port != "" {
		cfg.Port = overlay.Port
	}
	if overlay.Environment != "" {
		cfg.Environment = overlay.Environment
		cfg.TablePrefix = getTablePrefix(overlay.Environment)
	}
	if overlay.DatabaseURL != "" {
		cfg.DatabaseURL = overlay.DatabaseURL
	}
	if overlay.JWKSURL != "" {
		cfg.JWKSURL = overlay.JWKSURL
	}
	if overlay.CORSOrigins != "" {
		cfg.CORSOrigins = overlay.CORSOrigins
	}
	if overlay.TablePrefix != "" {
		cfg.TablePrefix = overlay.TablePrefix
	}
	if overlay.Storage.Bucket != "" {
		cfg.Storage.Bucket = overlay.Storage.Bucket
	}
	if overlay.Storage.Region != "" {
		cfg.Storage.Region = overlay.Storage.Region
	}
	if overlay.Storage.Endpoint != "" {
		cfg.Storage.Endpoint = overlay.Storage.Endpoint
		cfg.Storage.Local = overlay.Storage.Local
	}

	return nil
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
