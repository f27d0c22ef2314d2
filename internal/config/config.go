// Package config loads the docwiser configuration from YAML and the environment.
package config

import "time"

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Document DocumentConfig `yaml:"document"`
	Session  SessionConfig  `yaml:"session"`
	Render   RenderConfig   `yaml:"render"`
	Stamp    StampConfig    `yaml:"stamp"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StorageConfig selects the keyed store.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path   string `yaml:"path"   env:"STORAGE_PATH"   env-default:"./data/docwiser.db"`
}

// DocumentConfig selects the document type served by this process.
type DocumentConfig struct {
	Type      string `yaml:"type"       env:"DOCUMENT_TYPE"       env-default:"statement"`
	TypesFile string `yaml:"types_file" env:"DOCUMENT_TYPES_FILE"`
}

// SessionConfig holds session token settings. An empty secret makes the
// server generate one at startup, so tokens do not survive a restart.
type SessionConfig struct {
	Secret string        `yaml:"secret" env:"SESSION_SECRET"`
	TTL    time.Duration `yaml:"ttl"    env:"SESSION_TTL"    env-default:"24h"`
}

// RenderConfig holds export settings.
type RenderConfig struct {
	Locale   string `yaml:"locale"    env:"RENDER_LOCALE"    env-default:"ko"`
	FontPath string `yaml:"font_path" env:"RENDER_FONT_PATH"`
}

// StampConfig bounds stamp uploads.
type StampConfig struct {
	MaxBytes int64 `yaml:"max_bytes" env:"STAMP_MAX_BYTES" env-default:"2097152"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}
