package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
server:
  host: "0.0.0.0"
  port: 9090
  shutdown_timeout: "5s"

storage:
  driver: "memory"

document:
  type: "estimate"

session:
  secret: "a-long-enough-session-secret"
  ttl: "2h"

render:
  locale: "en-US"

stamp:
  max_bytes: 1024

log:
  level: "debug"
`

func TestLoadFile_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "unset fields take defaults")
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "estimate", cfg.Document.Type)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "en-US", cfg.Render.Locale)
	assert.Equal(t, int64(1024), cfg.Stamp.MaxBytes)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DOCUMENT_TYPE", "statement")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "statement", cfg.Document.Type)
}

func TestLoadFile_ConfigPathEnv(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)

	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err = LoadFile("")
	assert.Error(t, err, "a missing $CONFIG_PATH file is an error")
}

func TestLoadFile_WorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, validYAML)
	t.Chdir(dir)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "estimate", cfg.Document.Type)
}

func TestLoadFile_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "./data/docwiser.db", cfg.Storage.Path)
	assert.Equal(t, "statement", cfg.Document.Type)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "ko", cfg.Render.Locale)
	assert.Equal(t, int64(2<<20), cfg.Stamp.MaxBytes)
}

func TestLoadFile_MissingExplicitPath(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("SERVER_PORT", "0")

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "port")
}

func validConfig() Config {
	return Config{
		Server:   ServerConfig{Port: 8080},
		Storage:  StorageConfig{Driver: DriverSQLite, Path: "db.sqlite"},
		Document: DocumentConfig{Type: "statement"},
		Session:  SessionConfig{TTL: time.Hour},
		Stamp:    StampConfig{MaxBytes: 1},
		Log:      LogConfig{Level: "info"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"memory needs no path", func(c *Config) { c.Storage = StorageConfig{Driver: DriverMemory} }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, false},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, false},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "postgres" }, false},
		{"sqlite without path", func(c *Config) { c.Storage.Path = " " }, false},
		{"no document type", func(c *Config) { c.Document.Type = "" }, false},
		{"short secret", func(c *Config) { c.Session.Secret = "short" }, false},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }, false},
		{"zero stamp size", func(c *Config) { c.Stamp.MaxBytes = 0 }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfig_DocType(t *testing.T) {
	cfg := validConfig()
	d, err := cfg.DocType()
	require.NoError(t, err)
	assert.Equal(t, "soa", d.Scope)

	cfg.Document.Type = "receipt"
	_, err = cfg.DocType()
	assert.Error(t, err)

	dir := t.TempDir()
	typesFile := filepath.Join(dir, "types.yaml")
	require.NoError(t, os.WriteFile(typesFile, []byte(`
- key: receipt
  title: Receipt
  export_name: receipt
  scope: rcpt
  documents_key: receipts
  supplier:
    - {name: supplier_name, label: Name}
`), 0o644))
	cfg.Document.TypesFile = typesFile

	d, err = cfg.DocType()
	require.NoError(t, err)
	assert.Equal(t, "rcpt.users", d.UsersKey())
}
