// seed escribe el estado de demostración en el almacenamiento configurado,
// reemplazando cualquier blob existente bajo la clave de la aplicación.
//
// Uso: go run ./cmd/seed
// Respeta las mismas variables de entorno que el servidor (STORAGE_DRIVER, etc.).
package main

import (
	"context"
	"time"

	"github.com/jhoicas/salespulse-api/internal/infrastructure/storage"
	"github.com/jhoicas/salespulse-api/pkg/config"
	"github.com/jhoicas/salespulse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx := context.Background()
	repo, closeRepo, err := storage.NewStateRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("inicializar persistencia")
	}
	defer closeRepo()

	state := storage.NewSeedState(time.Now())
	if err := repo.Save(ctx, state); err != nil {
		log.Fatal().Err(err).Msg("guardar estado semilla")
	}

	log.Info().
		Int("customers", len(state.Customers)).
		Int("products", len(state.Products)).
		Int("sales", len(state.Sales)).
		Int("goals", len(state.Goals)).
		Str("driver", cfg.Storage.Driver).
		Msg("estado semilla escrito")
}
