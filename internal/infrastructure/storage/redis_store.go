package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/salespulse-api/internal/domain/entity"
	"github.com/jhoicas/salespulse-api/internal/domain/repository"
	"github.com/jhoicas/salespulse-api/pkg/config"
)

var _ repository.StateRepository = (*RedisStore)(nil)

// RedisStore guarda el blob del estado bajo una clave fija en Redis,
// sin expiración: el blob vive hasta la siguiente escritura.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore construye el adaptador y verifica la conexión con un ping.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("storage: ping Redis %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, key: key}, nil
}

// Load lee el estado guardado; si la clave no existe, siembra los datos demo,
// los persiste y los devuelve.
func (s *RedisStore) Load(ctx context.Context) (entity.AppState, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		seed := NewSeedState(time.Now().UTC())
		if err := s.Save(ctx, seed); err != nil {
			return entity.AppState{}, err
		}
		return seed, nil
	}
	if err != nil {
		return entity.AppState{}, fmt.Errorf("storage: GET %s: %w", s.key, err)
	}

	var state entity.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return entity.AppState{}, fmt.Errorf("storage: deserializar estado: %w", err)
	}
	return state, nil
}

// Save reemplaza el blob completo.
func (s *RedisStore) Save(ctx context.Context, state entity.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: serializar estado: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("storage: SET %s: %w", s.key, err)
	}
	return nil
}

// Close cierra la conexión con Redis.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
