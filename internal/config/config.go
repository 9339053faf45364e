package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"teamwork-time/internal/domain"
)

// Config holds environment-driven configuration.
type Config struct {
	Teamwork struct {
		BaseURL string        // default: https://gisat.teamwork.com
		Timeout time.Duration // per HTTP request, default 30s
	}
	Export struct {
		Dir string // default: current working directory
	}
	Log struct {
		Level slog.Level // LOG_LEVEL: debug, info, warn, error
	}
}

// Request is one invocation: <apiKey> [month] [year].
// Month and Year are zero when omitted.
type Request struct {
	APIKey string
	Month  int
	Year   int
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config

	cfg.Teamwork.BaseURL = os.Getenv("TEAMWORK_BASE_URL")
	if cfg.Teamwork.BaseURL == "" {
		cfg.Teamwork.BaseURL = "https://gisat.teamwork.com"
	}
	cfg.Teamwork.Timeout = 30 * time.Second
	if v := os.Getenv("TEAMWORK_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("TEAMWORK_HTTP_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.Teamwork.Timeout = d
	}

	cfg.Export.Dir = os.Getenv("EXPORT_DIR")
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "."
	}

	cfg.Log.Level = slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.Log.Level.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

// ParseArgs reads the positional arguments (without the program name).
// A missing API key is reported before anything touches the network.
func ParseArgs(args []string) (Request, error) {
	var req Request
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return req, domain.ErrMissingCredential
	}
	req.APIKey = strings.TrimSpace(args[0])

	if len(args) > 1 && args[1] != "" {
		m, err := strconv.Atoi(args[1])
		if err != nil {
			return req, fmt.Errorf("%w: month must be a number, got %q", domain.ErrInvalidWindow, args[1])
		}
		if m < 1 || m > 12 {
			return req, fmt.Errorf("%w: month %d out of range 1-12", domain.ErrInvalidWindow, m)
		}
		req.Month = m
	}
	if len(args) > 2 && args[2] != "" {
		y, err := strconv.Atoi(args[2])
		if err != nil {
			return req, fmt.Errorf("%w: year must be a number, got %q", domain.ErrInvalidWindow, args[2])
		}
		if y < 1 {
			return req, fmt.Errorf("%w: year %d", domain.ErrInvalidWindow, y)
		}
		req.Year = y
	}
	return req, nil
}
