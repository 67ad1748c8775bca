package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Server keeps runtime settings for the API daemon.
type Server struct {
	ListenAddr       string
	DatabaseURL      string
	JWTSecret        string
	TokenTTL         time.Duration
	ReminderInterval time.Duration
}

// Client keeps runtime settings for the CLI.
type Client struct {
	BaseURL  string
	StateDir string
}

// LoadServer reads daemon configuration from environment variables with
// sane defaults.
func LoadServer() (Server, error) {
	cfg := Server{
		ListenAddr:       strings.TrimSpace(os.Getenv("TASKFLOW_ADDR")),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:        strings.TrimSpace(os.Getenv("TASKFLOW_JWT_SECRET")),
		TokenTTL:         parseMinutes(strings.TrimSpace(os.Getenv("TOKEN_TTL_MINUTES"))),
		ReminderInterval: parseHours(strings.TrimSpace(os.Getenv("REMINDER_INTERVAL_HOURS"))),
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8000"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskflow.db"
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 30 * time.Minute
	}
	if cfg.ReminderInterval == 0 {
		cfg.ReminderInterval = time.Hour
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("TASKFLOW_JWT_SECRET is required")
	}

	return cfg, nil
}

// LoadClient reads CLI configuration from environment variables with sane
// defaults. The state dir defaults to ~/.taskflow.
func LoadClient() (Client, error) {
	cfg := Client{
		BaseURL:  strings.TrimSpace(os.Getenv("TASKFLOW_API")),
		StateDir: strings.TrimSpace(os.Getenv("TASKFLOW_STATE_DIR")),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000/api"
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".taskflow")
	}

	return cfg, nil
}

func parseMinutes(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw + "m")
	if err != nil || d <= 0 {
		return 0
	}
	return d
}

func parseHours(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw + "h")
	if err != nil || d <= 0 {
		return 0
	}
	return d
}
