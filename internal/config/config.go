// Package config defines all configuration structures for the engine.  No I/O
// or parsing logic lives here — only plain data types and validation.
package config

import (
	"fmt"
	"time"

	"github.com/sozialtools/fristenwaechter/internal/infrastructure/messaging/kafka"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/logging"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/storage"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StorageConfig selects and parameterises the reminder blob store.
type StorageConfig struct {
	Backend string              `mapstructure:"backend"` // "file" | "redis"
	File    FileStorageConfig   `mapstructure:"file"`
	Redis   storage.RedisConfig `mapstructure:"redis"`
}

// FileStorageConfig holds the file-backed blob store parameters.
type FileStorageConfig struct {
	Path string `mapstructure:"path"`
}

// NotifyConfig selects the notification channel.
type NotifyConfig struct {
	Channel string `mapstructure:"channel"` // "log" | "kafka"
}

// MetricsConfig holds the metrics endpoint parameters.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// RemindersConfig holds engine-level reminder tunables.
type RemindersConfig struct {
	// UrgentHorizonDays is the default look-ahead window of the urgent list.
	UrgentHorizonDays int `mapstructure:"urgent_horizon_days"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure.  Every infrastructure component
// and application service reads its settings from the relevant sub-struct.
type Config struct {
	Server    ServerConfig         `mapstructure:"server"`
	Storage   StorageConfig        `mapstructure:"storage"`
	Kafka     kafka.ProducerConfig `mapstructure:"kafka"`
	Notify    NotifyConfig         `mapstructure:"notify"`
	Metrics   MetricsConfig        `mapstructure:"metrics"`
	Reminders RemindersConfig      `mapstructure:"reminders"`
	Log       logging.LogConfig    `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Storage
	switch c.Storage.Backend {
	case "file":
		if c.Storage.File.Path == "" {
			return fmt.Errorf("config: storage.file.path is required for the file backend")
		}
	case "redis":
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("config: storage.redis.addr is required for the redis backend")
		}
		if c.Storage.Redis.DB < 0 {
			return fmt.Errorf("config: storage.redis.db must be ≥ 0, got %d", c.Storage.Redis.DB)
		}
	default:
		return fmt.Errorf("config: storage.backend %q is invalid; expected file|redis", c.Storage.Backend)
	}

	// Notify
	switch c.Notify.Channel {
	case "log":
	case "kafka":
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("config: kafka.brokers must contain at least one broker for the kafka channel")
		}
	default:
		return fmt.Errorf("config: notify.channel %q is invalid; expected log|kafka", c.Notify.Channel)
	}

	// Reminders
	if c.Reminders.UrgentHorizonDays < 0 {
		return fmt.Errorf("config: reminders.urgent_horizon_days must be ≥ 0, got %d",
			c.Reminders.UrgentHorizonDays)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
