package cli

import (
	"fmt"

	"github.com/wordstash/wordstash/internal/config"
	"github.com/wordstash/wordstash/internal/library"
	"github.com/wordstash/wordstash/internal/logger"
	"github.com/wordstash/wordstash/internal/storage"
)

// openLibrary builds the storage adapter for the requested backend and
// loads a library from it. The returned closer releases the backend.
func openLibrary(backend, path string) (*library.Library, func(), error) {
	cfg := config.NewConfig()
	if backend != "" {
		cfg.Storage.Backend = backend
	}
	if path != "" {
		cfg.Storage.Path = path
	}

	log := logger.New("wordstash")

	var adapter storage.Adapter
	closer := func() {}
	switch cfg.Storage.Backend {
	case config.BackendFile:
		adapter = storage.NewFileAdapter(cfg.Storage.Path, log)
	case config.BackendSQLite:
		sqliteAdapter, err := storage.NewSQLiteAdapter(cfg.Storage.Path, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		adapter = sqliteAdapter
		closer = func() { sqliteAdapter.Close() }
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	return library.New(adapter, cfg, log), closer, nil
}
