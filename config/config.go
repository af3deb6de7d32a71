package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Bakery specifics
	Bakery BakeryConfig
}

type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig configures the optional automation API.
type HTTPServerConfig struct {
	Enabled         bool
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type BakeryConfig struct {
	Title          string
	Heading        string
	PricingPolicy  string
	MaxPurchaseQty int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/bakery/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/bakery/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Enabled = v.GetBool("http_server.enabled")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Bakery
	cfg.Bakery.Title = v.GetString("bakery.title")
	cfg.Bakery.Heading = v.GetString("bakery.heading")
	cfg.Bakery.PricingPolicy = v.GetString("bakery.pricing_policy")
	cfg.Bakery.MaxPurchaseQty = v.GetInt("bakery.max_purchase_qty")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.enabled", false)
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("http_server.rate_limit_per_min", 120)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("bakery.title", "Sweet Delights Bakery Management System")
	v.SetDefault("bakery.heading", "Sweet Delights Bakery")
	v.SetDefault("bakery.pricing_policy", "flat")
	v.SetDefault("bakery.max_purchase_qty", 10)
}

func validate(cfg *Config) error {
	if cfg.Bakery.MaxPurchaseQty <= 0 {
		return fmt.Errorf("bakery.max_purchase_qty must be positive, got %d", cfg.Bakery.MaxPurchaseQty)
	}
	if cfg.HTTPServer.Enabled {
		if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
			return fmt.Errorf("http_server.port out of range: %d", cfg.HTTPServer.Port)
		}
		if cfg.HTTPServer.RateLimitPerMin <= 0 {
			return fmt.Errorf("http_server.rate_limit_per_min must be positive")
		}
	}
	return nil
}
