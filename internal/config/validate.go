package config

import (
	"fmt"
	"strings"

	"github.com/mmynk/docwiser/internal/models"
	"github.com/mmynk/docwiser/pkg/logging"
)

// minSecretLen is the shortest accepted session secret.
const minSecretLen = 16

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("storage.path is required for the %s driver", DriverSQLite)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)", DriverSQLite, DriverMemory, c.Storage.Driver)
	}

	if strings.TrimSpace(c.Document.Type) == "" {
		return fmt.Errorf("document.type is required")
	}

	if c.Session.Secret != "" && len(c.Session.Secret) < minSecretLen {
		return fmt.Errorf("session.secret must be at least %d characters (got %d)", minSecretLen, len(c.Session.Secret))
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be > 0 (got %v)", c.Session.TTL)
	}

	if c.Stamp.MaxBytes <= 0 {
		return fmt.Errorf("stamp.max_bytes must be > 0 (got %d)", c.Stamp.MaxBytes)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// DocType resolves the configured document type against the built-in
// descriptors and the optional types file.
func (c *Config) DocType() (*models.DocType, error) {
	types, err := models.LoadDocTypes(c.Document.TypesFile)
	if err != nil {
		return nil, err
	}
	return types.Get(c.Document.Type)
}
