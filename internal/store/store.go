// Package store opens the configured record store backend.
package store

import (
	"context"
	"fmt"

	"bmitracker/internal/adapter/memory"
	"bmitracker/internal/adapter/postgres"
	"bmitracker/internal/adapter/sqlite"
	"bmitracker/internal/config"
	"bmitracker/internal/domain"

	"go.uber.org/zap"
)

// Open returns the record store selected by cfg.Driver. The caller owns the
// returned handle and must Close it.
func Open(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (domain.RecordRepository, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		log.Debug("store opened", zap.String("driver", cfg.Driver), zap.String("path", cfg.Path))
		return db, nil
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		log.Debug("store opened", zap.String("driver", cfg.Driver))
		return db, nil
	case config.DriverMemory:
		log.Warn("using in-memory store; records are lost on exit")
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
