package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type SettlementMode string

const (
	// SettlementClient runs the multi-step settlement from the client with compensations.
	SettlementClient SettlementMode = "client"
	// SettlementServer delegates settlement to the backend mark-as-paid/received endpoints.
	SettlementServer SettlementMode = "server"
)

type Config struct {
	App struct {
		Name     string     `envconfig:"APP_NAME" default:"Finboard"`
		LogLevel slog.Level `envconfig:"LOG_LEVEL" default:"info"`
		LogFile  string     `envconfig:"LOG_FILE" default:"finboard.log"`
	}

	API struct {
		BaseURL string        `envconfig:"API_URL" default:"http://localhost:8080"`
		Timeout time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
	}

	Session struct {
		Path string `envconfig:"SESSION_PATH"`
	}

	Settlement struct {
		Mode SettlementMode `envconfig:"SETTLEMENT_MODE" default:"client"`
	}

	DevServer struct {
		Port        int      `envconfig:"PORT" default:"8080"`
		JWTSecret   string   `envconfig:"JWT_SECRET" default:"finboard-dev-secret-change-me-please"`
		CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
		Seed        bool     `envconfig:"SEED" default:"true"`
	}
}

// SessionPath returns the configured session file, falling back to the user config directory.
func (c *Config) SessionPath() (string, error) {
	if c.Session.Path != "" {
		return c.Session.Path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}

	return filepath.Join(dir, "finboard", "session.json"), nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Settlement.Mode {
	case SettlementClient, SettlementServer:
	default:
		return nil, fmt.Errorf("invalid SETTLEMENT_MODE %q", cfg.Settlement.Mode)
	}

	return &cfg, nil
}
