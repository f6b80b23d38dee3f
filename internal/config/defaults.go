package config

import "time"

// Default values applied to unset fields.
const (
	DefaultServerPort        = 8080
	DefaultServerMode        = "release"
	DefaultReadTimeout       = 10 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultShutdownTimeout   = 15 * time.Second
	DefaultStorageBackend    = "file"
	DefaultStoragePath       = "data/erinnerungen.json"
	DefaultRedisAddr         = "localhost:6379"
	DefaultNotifyChannel     = "log"
	DefaultMetricsPath       = "/metrics"
	DefaultUrgentHorizonDays = 7
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
)

// ApplyDefaults fills every unset field of cfg with its default value.
// Explicitly-set values are never overwritten.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultStorageBackend
	}
	if cfg.Storage.File.Path == "" {
		cfg.Storage.File.Path = DefaultStoragePath
	}
	if cfg.Storage.Redis.Addr == "" {
		cfg.Storage.Redis.Addr = DefaultRedisAddr
	}

	if cfg.Notify.Channel == "" {
		cfg.Notify.Channel = DefaultNotifyChannel
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}

	if cfg.Reminders.UrgentHorizonDays == 0 {
		cfg.Reminders.UrgentHorizonDays = DefaultUrgentHorizonDays
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stderr"}
	}
}
