package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr        string        `mapstructure:"listen_addr"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ListenRetries     int           `mapstructure:"listen_retries"`
	ListenRetryDelay  time.Duration `mapstructure:"listen_retry_delay"`
	LogLevel          string        `mapstructure:"log_level"`
	LogFormat         string        `mapstructure:"log_format"`
	OutputDir         string        `mapstructure:"output_dir"`
	LockTimeout       time.Duration `mapstructure:"lock_timeout"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:        ":8080",
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ListenRetries:     3,
		ListenRetryDelay:  200 * time.Millisecond,
		LogLevel:          "info",
		LogFormat:         "json",
		OutputDir:         "dist",
		LockTimeout:       10 * time.Second,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr cannot be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	if c.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("read_header_timeout must be positive")
	}
	if c.ListenRetries < 0 {
		return fmt.Errorf("listen_retries cannot be negative")
	}
	if c.ListenRetryDelay <= 0 {
		return fmt.Errorf("listen_retry_delay must be positive")
	}
	if err := ValidateLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log_format: %s", c.LogFormat)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	// Check for path traversal in output directory
	if strings.Contains(c.OutputDir, "..") {
		return fmt.Errorf("output_dir contains invalid path traversal")
	}
	if c.LockTimeout <= 0 {
		return fmt.Errorf("lock_timeout must be positive")
	}
	return nil
}

// ValidateLogLevel validates a log level name (exported for reuse)
func ValidateLogLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown level %q", level)
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".k8s-demo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	// Configure environment variables
	v.SetEnvPrefix("K8S_DEMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// PORT is what most container platforms inject
	if err := v.BindEnv("port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("listen_addr", defaults.ListenAddr)
	v.SetDefault("shutdown_timeout", defaults.ShutdownTimeout)
	v.SetDefault("read_header_timeout", defaults.ReadHeaderTimeout)
	v.SetDefault("listen_retries", defaults.ListenRetries)
	v.SetDefault("listen_retry_delay", defaults.ListenRetryDelay)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("lock_timeout", defaults.LockTimeout)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if port := strings.TrimSpace(v.GetString("port")); port != "" {
		config.ListenAddr = ":" + port
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
