// Package config loads runtime settings for the catalog service from the
// environment, an optional .env file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	HTTP    HTTPConfig
	Log     LogConfig
	Metrics MetricsConfig
	CORS    CORSConfig

	// WriteRateLimit caps POST/PUT/DELETE requests per client IP per minute.
	// Zero disables limiting.
	WriteRateLimit int
}

type HTTPConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
	Token   string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8000)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("METRICS_ENABLED", false)
	v.SetDefault("METRICS_TOKEN", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("WRITE_RATE_LIMIT", 0)
}

// Load resolves configuration with precedence flags > env > .env > defaults.
// args are the command-line arguments without the program name.
func Load(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}
	v.AutomaticEnv()

	fs := pflag.NewFlagSet("catalog", pflag.ContinueOnError)
	fs.String("host", v.GetString("HOST"), "bind address")
	fs.Int("port", v.GetInt("PORT"), "bind port")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("HOST", fs.Lookup("host")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("PORT", fs.Lookup("port")); err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Host:            v.GetString("HOST"),
			Port:            v.GetInt("PORT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
			Token:   v.GetString("METRICS_TOKEN"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		WriteRateLimit: v.GetInt("WRITE_RATE_LIMIT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.HTTP.Port)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.WriteRateLimit < 0 {
		return fmt.Errorf("WRITE_RATE_LIMIT must not be negative")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
