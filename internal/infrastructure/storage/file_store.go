package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/salespulse-api/internal/domain/entity"
	"github.com/jhoicas/salespulse-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que FileStore implementa StateRepository.
var _ repository.StateRepository = (*FileStore)(nil)

// FileStore guarda el blob completo del estado como <dataDir>/<key>.json.
// Es el driver por defecto: cero dependencias de servicios externos, mismo
// modelo de un solo blob bajo una clave fija que los demás adaptadores.
type FileStore struct {
	path string
}

// NewFileStore construye el adaptador creando el directorio si no existe.
func NewFileStore(dataDir, key string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dataDir, err)
	}
	return &FileStore{path: filepath.Join(dataDir, key+".json")}, nil
}

// Load lee el estado guardado; si el archivo no existe, siembra los datos
// demo, los persiste y los devuelve.
func (s *FileStore) Load(_ context.Context) (entity.AppState, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		seed := NewSeedState(time.Now().UTC())
		if err := s.write(seed); err != nil {
			return entity.AppState{}, err
		}
		return seed, nil
	}
	if err != nil {
		return entity.AppState{}, fmt.Errorf("storage: leer %s: %w", s.path, err)
	}

	var state entity.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return entity.AppState{}, fmt.Errorf("storage: deserializar estado: %w", err)
	}
	return state, nil
}

// Save reemplaza el blob completo.
func (s *FileStore) Save(_ context.Context, state entity.AppState) error {
	return s.write(state)
}

// write serializa y escribe vía archivo temporal + rename para no dejar un
// blob a medias si el proceso muere durante la escritura.
func (s *FileStore) write(state entity.AppState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: serializar estado: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("storage: escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("storage: reemplazar %s: %w", s.path, err)
	}
	return nil
}
