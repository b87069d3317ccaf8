package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port string

	// Auth; empty leaves the API open.
	APIKey string

	// Indentation defaults
	IndentWidth int
	IndentTabs  bool

	// Request limits
	MaxRequestBytes int64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8095"),

		APIKey: os.Getenv("TEXFMT_API_KEY"),

		IndentWidth: envInt("INDENT_WIDTH", 4),
		IndentTabs:  envBool("INDENT_TABS", false),

		MaxRequestBytes: envInt64("MAX_REQUEST_BYTES", 10485760), // 10MB
	}

	if cfg.IndentWidth <= 0 {
		cfg.IndentWidth = 4
	}
	if cfg.MaxRequestBytes <= 0 {
		cfg.MaxRequestBytes = 10485760
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.IndentWidth > 64 {
		return fmt.Errorf("INDENT_WIDTH %d is unreasonably large", c.IndentWidth)
	}
	return nil
}

// IndentUnit returns the default indent unit string for one level.
func (c Config) IndentUnit() string {
	if c.IndentTabs {
		return "\t"
	}
	return strings.Repeat(" ", c.IndentWidth)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
