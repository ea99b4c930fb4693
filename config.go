package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration. Every field has a default; an
// optional YAML file and CHOMP_* environment variables override it.
type Config struct {
	XDim     int    `yaml:"x_dim"`
	YDim     int    `yaml:"y_dim"`
	ZDim     int    `yaml:"z_dim"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		XDim: 2,
		YDim: 3,
		ZDim: 19,

		// 0 means one worker per CPU.
		Workers: 0,

		LogLevel: "info",
	}
}

// LoadConfig resolves the effective configuration: defaults first,
// then the YAML file at path if one is given, then the environment.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("read config file: %v", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("parse config file %s: %v", path, err)
		}
	}
	if err := applyEnvOverrides(&config); err != nil {
		return config, err
	}
	return config, nil
}

func applyEnvOverrides(config *Config) error {
	intVars := []struct {
		name   string
		target *int
	}{
		{"CHOMP_X_DIM", &config.XDim},
		{"CHOMP_Y_DIM", &config.YDim},
		{"CHOMP_Z_DIM", &config.ZDim},
		{"CHOMP_WORKERS", &config.Workers},
	}
	for _, v := range intVars {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %v", v.name, err)
		}
		*v.target = parsed
	}
	if raw := os.Getenv("CHOMP_LOG_LEVEL"); raw != "" {
		config.LogLevel = raw
	}
	return nil
}
