package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dramarec/internal/config"
)

// ErrEmptySnapshot indicates the SQLite snapshot holds no entries.
var ErrEmptySnapshot = errors.New("catalog snapshot is empty; run 'dramarec catalog import'")

// Open loads the catalog from the configured source.
func Open(ctx context.Context, cfg *config.Config) ([]Record, error) {
	if cfg == nil {
		return nil, errors.New("catalog: config is required")
	}
	switch cfg.Catalog.Source {
	case config.SourceSQLite:
		return loadSnapshot(ctx, cfg.Catalog.Database)
	default:
		return LoadFile(cfg.Catalog.Path)
	}
}

// Import parses the configured catalog file and writes it to the snapshot database.
func Import(ctx context.Context, cfg *config.Config) (ImportInfo, error) {
	records, err := LoadFile(cfg.Catalog.Path)
	if err != nil {
		return ImportInfo{}, err
	}
	store, err := OpenStore(ctx, cfg.Catalog.Database)
	if err != nil {
		return ImportInfo{}, err
	}
	defer store.Close()
	return store.Replace(ctx, records, cfg.Catalog.Path)
}

func loadSnapshot(ctx context.Context, path string) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog snapshot %s: %w", path, err)
	}
	store, err := OpenStore(ctx, path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	records, err := store.Records(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptySnapshot
	}
	return records, nil
}
