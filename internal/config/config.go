package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied before any file or environment override.
const (
	DefaultPort           = "8080"
	DefaultServiceName    = "registry-gateway"
	DefaultGatewayBaseURL = "https://agents.example.com"
	DefaultLogLevel       = "info"
)

// Config captures the runtime configuration of the gateway. Everything is
// optional: the gateway starts with defaults alone.
type Config struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`
	// ServiceName is stamped into execution_metadata.service on every response.
	ServiceName string `yaml:"service_name"`
	// GatewayBaseURL is the public origin used to build bootstrap endpoint links.
	GatewayBaseURL string `yaml:"gateway_base_url"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Load resolves configuration in three passes: defaults, then the optional
// YAML file named by CONFIG_FILE, then individual environment overrides.
func Load() (Config, error) {
	cfg := Config{
		Port:           DefaultPort,
		ServiceName:    DefaultServiceName,
		GatewayBaseURL: DefaultGatewayBaseURL,
		LogLevel:       DefaultLogLevel,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("GATEWAY_BASE_URL"); v != "" {
		cfg.GatewayBaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}
