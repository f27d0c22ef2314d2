package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/docwiser/internal/auth"
	"github.com/mmynk/docwiser/internal/config"
	"github.com/mmynk/docwiser/internal/metrics"
	"github.com/mmynk/docwiser/internal/models"
	"github.com/mmynk/docwiser/internal/render"
	"github.com/mmynk/docwiser/internal/service"
	"github.com/mmynk/docwiser/internal/storage"
	"github.com/mmynk/docwiser/internal/storage/memory"
	"github.com/mmynk/docwiser/internal/storage/sqlite"
)

// app is the document service wired from configuration.
type app struct {
	docType   *models.DocType
	store     storage.Store
	service   *service.DocumentService
	formatter *render.Formatter
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, registerer prometheus.Registerer) (*app, error) {
	docType, err := cfg.DocType()
	if err != nil {
		return nil, err
	}

	formatter, err := render.NewFormatter(cfg.Render.Locale)
	if err != nil {
		return nil, err
	}
	pdf, err := render.NewPDFRenderer(cfg.Render.FontPath)
	if err != nil {
		return nil, err
	}

	secret := cfg.Session.Secret
	if secret == "" {
		if secret, err = randomSecret(); err != nil {
			return nil, err
		}
		logger.Debug("Generated ephemeral session secret")
	}

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Info("Storage initialized", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path, "doc_type", docType.Key)

	svc := service.NewDocumentService(service.Options{
		Store:         store,
		DocType:       docType,
		Exporter:      render.NewExporter(docType, formatter, render.KoreanLabels(), pdf),
		Tokens:        auth.NewJWTManager(secret, docType.Scope, cfg.Session.TTL),
		Metrics:       metrics.New(registerer),
		Logger:        logger,
		MaxStampBytes: cfg.Stamp.MaxBytes,
	})

	return &app{docType: docType, store: store, service: svc, formatter: formatter}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func openStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		store, err := sqlite.New(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
