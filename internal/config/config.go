package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"release-notes-bot/internal/adapter/querysource"
	"release-notes-bot/internal/domain/model"
)

// Store drivers.
const (
	DriverBigQuery = "bigquery"
	DriverSQLite   = "sqlite"
)

// Config contains runtime configuration values.
type Config struct {
	ProjectID      string
	ConfigPath     string
	QueriesDir     string
	StoreDriver    string
	SQLitePath     string
	ScheduleCron   string
	RequestTimeout time.Duration
	RunTimeout     time.Duration
	LogLevel       string
	// Static is the YAML configuration merged verbatim into every render context.
	Static map[string]any
}

const (
	defaultConfigPath = "conf.yaml"
	defaultDriver     = DriverBigQuery
	defaultSQLitePath = "releasebot.db"
	defaultCron       = "0 8 * * *" // 08:00 every day
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 5 * time.Minute
	defaultLogLevel   = "info"
)

// Load builds a Config from environment variables with sane defaults, then
// reads the static YAML configuration it points to.
func Load() (*Config, error) {
	cfg := &Config{
		ProjectID:      getenvDefault("GCP_PROJECT", ""),
		ConfigPath:     getenvDefault("RELEASEBOT_CONFIG", defaultConfigPath),
		QueriesDir:     getenvDefault("QUERIES_DIR", ""),
		StoreDriver:    strings.ToLower(getenvDefault("STORE_DRIVER", defaultDriver)),
		SQLitePath:     getenvDefault("SQLITE_PATH", defaultSQLitePath),
		ScheduleCron:   getenvDefault("SCHEDULE_CRON", defaultCron),
		RequestTimeout: parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		RunTimeout:     parseDurationDefault("RUN_TIMEOUT", defaultRunTimeout),
		LogLevel:       getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	// A driver is known when it ships query templates.
	if drivers := querysource.Drivers(); !slices.Contains(drivers, cfg.StoreDriver) {
		return nil, model.ConfigurationError("load config", fmt.Errorf("unknown STORE_DRIVER %q (want one of %s)", cfg.StoreDriver, strings.Join(drivers, ", ")))
	}
	if cfg.StoreDriver == DriverBigQuery && cfg.ProjectID == "" {
		return nil, model.ConfigurationError("load config", fmt.Errorf("GCP_PROJECT is required for the %s driver", DriverBigQuery))
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = defaultRunTimeout
	}

	static, err := LoadStatic(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.Static = static

	return cfg, nil
}

// LoadStatic reads a flat YAML mapping. It must carry a non-empty webhook_url.
func LoadStatic(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.ConfigurationError("read static config", err)
	}

	static := map[string]any{}
	if err := yaml.Unmarshal(data, &static); err != nil {
		return nil, model.ConfigurationError("parse static config", fmt.Errorf("%s: %w", path, err))
	}

	if webhook, _ := static[model.KeyWebhookURL].(string); strings.TrimSpace(webhook) == "" {
		return nil, model.ConfigurationError("parse static config", fmt.Errorf("%s: %s is required", path, model.KeyWebhookURL))
	}

	return static, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
