// Package config handles configuration loading from an optional YAML file,
// environment variables and Kubernetes secrets.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the keenergy exporter.
type Config struct {
	// Controller connection
	Host               string
	Username           string
	Password           string
	HTTPS              bool
	InsecureSkipVerify bool

	// Server configuration
	ListenAddr    string
	ScrapeTimeout time.Duration

	// Logging configuration
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
}

// fileConfig is the YAML shape of the optional config file. Durations are
// given in seconds.
type fileConfig struct {
	Host                 string `yaml:"host"`
	Username             string `yaml:"username"`
	Password             string `yaml:"password"`
	HTTPS                bool   `yaml:"https"`
	InsecureSkipVerify   bool   `yaml:"insecure_skip_verify"`
	ListenAddr           string `yaml:"listen_addr"`
	ScrapeTimeoutSeconds int    `yaml:"scrape_timeout_seconds"`
	LogLevel             string `yaml:"log_level"`
	LogFormat            string `yaml:"log_format"`
}

// LoadConfig loads configuration in ascending precedence: defaults, an
// optional YAML file named by KEENERGY_CONFIG_FILE, mounted Kubernetes
// secrets, then environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// Set defaults
		ListenAddr:    ":9818",
		ScrapeTimeout: 30 * time.Second,
		LogLevel:      "info",
		LogFormat:     "text",
	}

	if path := os.Getenv("KEENERGY_CONFIG_FILE"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	// Kubernetes secrets override the file, environment variables override
	// both.
	username, password, err := tryLoadFromSecrets()
	if err == nil && username != "" && password != "" {
		cfg.Username = username
		cfg.Password = password
	}

	if host := os.Getenv("KEENERGY_HOST"); host != "" {
		cfg.Host = host
	}
	if username := os.Getenv("KEENERGY_USERNAME"); username != "" {
		cfg.Username = username
	}
	if password := os.Getenv("KEENERGY_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if https := os.Getenv("KEENERGY_HTTPS"); https != "" {
		cfg.HTTPS = https == "1" || https == "true"
	}
	if skip := os.Getenv("KEENERGY_INSECURE_SKIP_VERIFY"); skip != "" {
		cfg.InsecureSkipVerify = skip == "1" || skip == "true"
	}
	if addr := os.Getenv("KEENERGY_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if level := os.Getenv("KEENERGY_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("KEENERGY_LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}
	if timeout := os.Getenv("KEENERGY_SCRAPE_TIMEOUT"); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil && seconds > 0 {
			cfg.ScrapeTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Host != "" {
		cfg.Host = fc.Host
	}
	if fc.Username != "" {
		cfg.Username = fc.Username
	}
	if fc.Password != "" {
		cfg.Password = fc.Password
	}
	cfg.HTTPS = fc.HTTPS
	cfg.InsecureSkipVerify = fc.InsecureSkipVerify
	if fc.ListenAddr != "" {
		cfg.ListenAddr = fc.ListenAddr
	}
	if fc.ScrapeTimeoutSeconds > 0 {
		cfg.ScrapeTimeout = time.Duration(fc.ScrapeTimeoutSeconds) * time.Second
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	return nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("controller host is required (set KEENERGY_HOST or the host key in the config file)")
	}
	if c.ScrapeTimeout < 5*time.Second {
		return errors.New("scrape timeout must be at least 5 seconds")
	}
	return nil
}
