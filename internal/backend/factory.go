// Package backend selects the durable key-value store implementation from
// configuration.
package backend

import (
	"fmt"
	"log/slog"

	"dayboard/internal/config"
	"dayboard/internal/storage"
)

// Open returns the KV store for the configured backend. The caller owns
// the returned store and must Close it on shutdown.
func Open(cfg *config.Config, logger *slog.Logger) (storage.KV, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.DataBackend {
	case "sqlite":
		kv, err := storage.NewSQLiteKV(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
		return kv, nil
	case "memory":
		logger.Info("Initialized memory backend")
		return storage.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
