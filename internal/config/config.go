// package config loads the host configuration from a YAML file and the
// environment
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/cirocosta/timerclock/internal/notify"
)

// Config holds the daemon settings. Each field is read from the YAML file
// first and can be overridden by its TIMERCLOCK_ environment variable.
type Config struct {
	LogLevel     string        `yaml:"log_level" env:"TIMERCLOCK_LOG_LEVEL" env-default:"INFO"`
	Address      string        `yaml:"address" env:"TIMERCLOCK_ADDRESS" env-default:"127.0.0.1:8080"`
	HistoryFile  string        `yaml:"history_file" env:"TIMERCLOCK_HISTORY_FILE" env-default:"clock_history.json"`
	TickInterval time.Duration `yaml:"tick_interval" env:"TIMERCLOCK_TICK_INTERVAL" env-default:"1s"`
	SaveInterval time.Duration `yaml:"save_interval" env:"TIMERCLOCK_SAVE_INTERVAL" env-default:"1m"`
	NotifyLead   time.Duration `yaml:"notify_lead" env:"TIMERCLOCK_NOTIFY_LEAD" env-default:"5m"`
	NotifyGrace  time.Duration `yaml:"notify_grace" env:"TIMERCLOCK_NOTIFY_GRACE" env-default:"1m"`
}

// Load reads configPath, falling back to the environment alone when the
// path is empty or the file does not exist
func Load(configPath string) (Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env: %w", err)
		}
		return cfg, cfg.Validate()
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return Config{}, fmt.Errorf("read config %q: %w", configPath, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env: %w", err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate rejects intervals and windows that cannot drive a tick loop
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.SaveInterval <= 0 {
		return fmt.Errorf("save_interval must be positive, got %s", c.SaveInterval)
	}
	if c.NotifyLead < 0 || c.NotifyGrace <= 0 {
		return fmt.Errorf("notification windows must be positive, got lead %s grace %s", c.NotifyLead, c.NotifyGrace)
	}
	if c.HistoryFile == "" {
		return fmt.Errorf("history_file is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Windows returns the notification windows
func (c Config) Windows() notify.Windows {
	return notify.Windows{Lead: c.NotifyLead, Grace: c.NotifyGrace}
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
