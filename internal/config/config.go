package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"planfit/internal/models"
)

// Config holds the configuration for the service.
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metricsPort"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Catalog struct {
		Path string `yaml:"path"`
	} `yaml:"catalog"`
	Auth struct {
		Secret string `yaml:"secret"`
	} `yaml:"auth"`
	Defaults models.Constraints `yaml:"defaults"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Database.Path = "planfit.db"
	cfg.Defaults = models.DefaultConstraints()
	return cfg
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Defaults.MealsPerDay == 0 {
		cfg.Defaults = models.DefaultConstraints()
	}
	return cfg, nil
}
