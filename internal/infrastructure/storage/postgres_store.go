package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/salespulse-api/internal/domain/entity"
	"github.com/jhoicas/salespulse-api/internal/domain/repository"
	"github.com/jhoicas/salespulse-api/pkg/config"
)

var _ repository.StateRepository = (*PostgresStore)(nil)

// createStateTable una fila por clave; el estado completo vive en la columna jsonb.
const createStateTable = `
CREATE TABLE IF NOT EXISTS app_state (
	key        TEXT PRIMARY KEY,
	blob       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore guarda el blob del estado en una única fila jsonb.
// No hay esquema relacional: la persistencia es un KV de un solo blob por
// contrato, Postgres solo aporta durabilidad.
type PostgresStore struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgresPool crea el pool de conexiones con los límites habituales.
func NewPostgresPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("storage: parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("storage: crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: ping DB: %w", err)
	}
	return pool, nil
}

// NewPostgresStore construye el adaptador creando la tabla si no existe.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, key string) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, createStateTable); err != nil {
		return nil, fmt.Errorf("storage: crear tabla app_state: %w", err)
	}
	return &PostgresStore{pool: pool, key: key}, nil
}

// Load lee el estado guardado; si la fila no existe, siembra los datos demo,
// los persiste y los devuelve.
func (s *PostgresStore) Load(ctx context.Context) (entity.AppState, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT blob FROM app_state WHERE key = $1`, s.key,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		seed := NewSeedState(time.Now().UTC())
		if err := s.Save(ctx, seed); err != nil {
			return entity.AppState{}, err
		}
		return seed, nil
	}
	if err != nil {
		return entity.AppState{}, fmt.Errorf("storage: SELECT app_state: %w", err)
	}

	var state entity.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return entity.AppState{}, fmt.Errorf("storage: deserializar estado: %w", err)
	}
	return state, nil
}

// Save reemplaza el blob completo (upsert sobre la clave fija).
func (s *PostgresStore) Save(ctx context.Context, state entity.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: serializar estado: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO app_state (key, blob, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()`,
		s.key, raw,
	)
	if err != nil {
		return fmt.Errorf("storage: upsert app_state: %w", err)
	}
	return nil
}
