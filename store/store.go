// Package store persists the copy-all field toggles.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/raushankrgupta/product-clipper/config"
	"github.com/raushankrgupta/product-clipper/models"
)

// SettingsStore loads and saves the user's field toggles.
// Load returns the defaults when nothing was saved yet.
type SettingsStore interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}

// Closer is implemented by stores holding a connection
type Closer interface {
	Close(ctx context.Context) error
}

// New opens the backend selected by the configuration
func New(ctx context.Context, cfg *config.Config) (SettingsStore, error) {
	switch cfg.SettingsBackend {
	case config.BackendFile:
		return NewFileStore(cfg.SettingsPath), nil
	case config.BackendSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	case config.BackendMongo:
		return ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	}
	return nil, fmt.Errorf("unknown settings backend %q", cfg.SettingsBackend)
}

// Memory keeps settings in process memory
type Memory struct {
	mu       sync.RWMutex
	settings models.Settings
}

func (m *Memory) Load(ctx context.Context) (models.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.WithDefaults(), nil
}

func (m *Memory) Save(ctx context.Context, settings models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = settings.WithDefaults()
	return nil
}
