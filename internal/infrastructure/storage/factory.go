package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/salespulse-api/internal/domain/repository"
	"github.com/jhoicas/salespulse-api/pkg/config"
)

// NewStateRepository construye el adaptador de persistencia según
// cfg.Storage.Driver. Devuelve además un closer para liberar conexiones
// (no-op para el driver de archivo).
func NewStateRepository(ctx context.Context, cfg *config.Config) (repository.StateRepository, func(), error) {
	switch cfg.Storage.Driver {
	case "file":
		store, err := NewFileStore(cfg.Storage.DataDir, cfg.Storage.Key)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil

	case "redis":
		store, err := NewRedisStore(ctx, cfg.Redis, cfg.Storage.Key)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case "postgres":
		pool, err := NewPostgresPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store, err := NewPostgresStore(ctx, pool, cfg.Storage.Key)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}
}
