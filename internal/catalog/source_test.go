package catalog_test

import (
	"context"
	"errors"
	"testing"

	"dramarec/internal/catalog"
	"dramarec/internal/config"
	"dramarec/internal/testsupport"
)

func TestOpenCSVSource(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSampleCatalog())

	records, err := catalog.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if len(records) != len(testsupport.SampleTitles) {
		t.Fatalf("expected %d records, got %d", len(testsupport.SampleTitles), len(records))
	}
}

func TestImportThenOpenSQLiteSource(t *testing.T) {
	ctx := context.Background()
	cfg := testsupport.NewConfig(t, testsupport.WithSampleCatalog())

	info, err := catalog.Import(ctx, cfg)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if info.Entries != len(testsupport.SampleTitles) || info.Source != cfg.Catalog.Path {
		t.Fatalf("unexpected import info: %+v", info)
	}

	cfg.Catalog.Source = config.SourceSQLite
	records, err := catalog.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	for i, want := range testsupport.SampleTitles {
		if records[i].Title != want {
			t.Fatalf("record %d title = %q, want %q", i, records[i].Title, want)
		}
	}
}

func TestOpenSQLiteWithoutSnapshot(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSource(config.SourceSQLite))
	if _, err := catalog.Open(context.Background(), cfg); err == nil {
		t.Fatal("expected error when snapshot file is absent")
	}
}

func TestOpenSQLiteEmptySnapshot(t *testing.T) {
	ctx := context.Background()
	cfg := testsupport.NewConfig(t, testsupport.WithSource(config.SourceSQLite))
	store, err := catalog.OpenStore(ctx, cfg.Catalog.Database)
	if err != nil {
		t.Fatalf("OpenStore returned error: %v", err)
	}
	_ = store.Close()

	if _, err := catalog.Open(ctx, cfg); !errors.Is(err, catalog.ErrEmptySnapshot) {
		t.Fatalf("expected ErrEmptySnapshot, got %v", err)
	}
}

func TestImportMissingCatalog(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if _, err := catalog.Import(context.Background(), cfg); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
