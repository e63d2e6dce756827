package catalog_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"dramarec/internal/catalog"
)

func openStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.OpenStore(context.Background(), filepath.Join(t.TempDir(), "data", "catalog.db"))
	if err != nil {
		t.Fatalf("OpenStore returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreReplaceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	records := loadSample(t)
	records[0].Extra = map[string]string{"Network": "GMMTV"}

	info, err := store.Replace(ctx, records, "catalog.csv")
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if info.ID == "" || info.Entries != len(records) || info.Source != "catalog.csv" {
		t.Fatalf("unexpected import info: %+v", info)
	}

	got, err := store.Records(ctx)
	if err != nil {
		t.Fatalf("Records returned error: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i := range records {
		want := records[i]
		if got[i].Title != want.Title || got[i].Genres != want.Genres || got[i].Rating != want.Rating ||
			got[i].Composite != want.Composite || got[i].Year != want.Year {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], want)
		}
	}
	if got[0].Extra["Network"] != "GMMTV" {
		t.Fatalf("extra columns not restored: %v", got[0].Extra)
	}
	if got[1].Extra != nil {
		t.Fatalf("expected nil extras, got %v", got[1].Extra)
	}
}

func TestStoreReplaceOverwritesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	records := loadSample(t)

	if _, err := store.Replace(ctx, records, "first.csv"); err != nil {
		t.Fatalf("first Replace: %v", err)
	}
	second, err := store.Replace(ctx, records[:2], "second.csv")
	if err != nil {
		t.Fatalf("second Replace: %v", err)
	}

	got, err := store.Records(ctx)
	if err != nil {
		t.Fatalf("Records returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records after replace, got %d", len(got))
	}

	last, err := store.LastImport(ctx)
	if err != nil {
		t.Fatalf("LastImport returned error: %v", err)
	}
	if last == nil || last.ID != second.ID || last.Source != "second.csv" || last.Entries != 2 {
		t.Fatalf("LastImport = %+v, want %+v", last, second)
	}
}

func TestStoreLastImportEmpty(t *testing.T) {
	last, err := openStore(t).LastImport(context.Background())
	if err != nil {
		t.Fatalf("LastImport returned error: %v", err)
	}
	if last != nil {
		t.Fatalf("expected nil import info, got %+v", last)
	}
}

func TestStoreReplaceRejectsConcurrentImport(t *testing.T) {
	store := openStore(t)
	held := flock.New(store.Path() + ".lock")
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("hold lock: locked=%v err=%v", locked, err)
	}
	defer func() { _ = held.Unlock() }()

	_, err = store.Replace(context.Background(), loadSample(t), "catalog.csv")
	if !errors.Is(err, catalog.ErrImportInProgress) {
		t.Fatalf("expected ErrImportInProgress, got %v", err)
	}
}

func TestOpenStoreRejectsSchemaMismatch(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")
	store, err := catalog.OpenStore(ctx, path)
	if err != nil {
		t.Fatalf("OpenStore returned error: %v", err)
	}
	_ = store.Close()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := db.ExecContext(ctx, "UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_ = db.Close()

	if _, err := catalog.OpenStore(ctx, path); !errors.Is(err, catalog.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
