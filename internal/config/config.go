// Package config loads service configuration from an optional YAML
// file with environment overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SMTP configures the order-notification mailer. Mailing is disabled
// when User or Pass is empty.
type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Pass     string `yaml:"pass"`
	NotifyTo string `yaml:"notify_to"`
}

// Config is the full service configuration.
type Config struct {
	Addr        string `yaml:"addr"`
	DataPath    string `yaml:"data_path"`
	CatalogPath string `yaml:"catalog_path"`
	SMTP        SMTP   `yaml:"smtp"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:        ":8082",
		DataPath:    "./data.json",
		CatalogPath: "./product_data.json",
		SMTP:        SMTP{Host: "smtp.gmail.com", Port: 587},
	}
}

// Load reads path if it exists, then applies env overrides. A missing
// file is fine; a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults + env only
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if v := os.Getenv("VERDALIA_DATA"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("VERDALIA_CATALOG"); v != "" {
		c.CatalogPath = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		c.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.SMTP.Port = port
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		c.SMTP.User = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		c.SMTP.Pass = v
	}
	if v := os.Getenv("VERDALIA_NOTIFY_TO"); v != "" {
		c.SMTP.NotifyTo = v
	}
}
