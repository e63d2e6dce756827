package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current snapshot schema version. Re-import the catalog
// after bumping it.
const schemaVersion = 1

// importTimeLayout is fixed width so imported_at sorts lexically.
const importTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrSchemaMismatch indicates the snapshot was written by an incompatible version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ErrImportInProgress indicates another process holds the import lock.
var ErrImportInProgress = errors.New("catalog import already in progress")

// ImportInfo describes the most recent snapshot import.
type ImportInfo struct {
	ID         string
	Source     string
	Entries    int
	ImportedAt time.Time
}

// Store persists a normalized catalog snapshot in SQLite.
type Store struct {
	db       *sql.DB
	path     string
	lockPath string
}

// OpenStore initializes or connects to the snapshot database at path.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lockPath: path + ".lock"}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}
	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s and run 'dramarec catalog import')",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Replace swaps the stored catalog for records in one transaction. An
// exclusive file lock prevents concurrent imports from interleaving.
func (s *Store) Replace(ctx context.Context, records []Record, source string) (ImportInfo, error) {
	lock := flock.New(s.lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return ImportInfo{}, fmt.Errorf("acquire import lock: %w", err)
	}
	if !ok {
		return ImportInfo{}, ErrImportInProgress
	}
	defer func() { _ = lock.Unlock() }()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportInfo{}, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM dramas"); err != nil {
		return ImportInfo{}, fmt.Errorf("clear dramas: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dramas (
            position, title, genres, mood_tags, summary, main_leads, year, rating, composite, extra_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return ImportInfo{}, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		extra, err := encodeExtra(rec.Extra)
		if err != nil {
			return ImportInfo{}, fmt.Errorf("encode extra columns for %q: %w", rec.Title, err)
		}
		if _, err := stmt.ExecContext(ctx,
			i,
			rec.Title,
			rec.Genres,
			rec.MoodTags,
			rec.Summary,
			rec.MainLeads,
			rec.Year,
			rec.Rating,
			rec.Composite,
			extra,
		); err != nil {
			return ImportInfo{}, fmt.Errorf("insert %q: %w", rec.Title, err)
		}
	}

	info := ImportInfo{
		ID:         uuid.NewString(),
		Source:     source,
		Entries:    len(records),
		ImportedAt: time.Now().UTC(),
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO imports (id, source, entries, imported_at) VALUES (?, ?, ?, ?)",
		info.ID, info.Source, info.Entries, info.ImportedAt.Format(importTimeLayout),
	); err != nil {
		return ImportInfo{}, fmt.Errorf("record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ImportInfo{}, fmt.Errorf("commit import: %w", err)
	}
	return info, nil
}

// Records returns the stored catalog in catalog order.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
            title, genres, mood_tags, summary, main_leads, year, rating, composite, extra_json
        FROM dramas ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query dramas: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec   Record
			extra sql.NullString
		)
		if err := rows.Scan(
			&rec.Title,
			&rec.Genres,
			&rec.MoodTags,
			&rec.Summary,
			&rec.MainLeads,
			&rec.Year,
			&rec.Rating,
			&rec.Composite,
			&extra,
		); err != nil {
			return nil, fmt.Errorf("scan drama: %w", err)
		}
		if extra.Valid && extra.String != "" {
			if err := json.Unmarshal([]byte(extra.String), &rec.Extra); err != nil {
				return nil, fmt.Errorf("decode extra columns for %q: %w", rec.Title, err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dramas: %w", err)
	}
	return records, nil
}

// LastImport returns metadata for the newest import, or nil when the
// snapshot has never been populated.
func (s *Store) LastImport(ctx context.Context) (*ImportInfo, error) {
	var (
		info       ImportInfo
		importedAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, source, entries, imported_at FROM imports ORDER BY imported_at DESC, rowid DESC LIMIT 1",
	).Scan(&info.ID, &info.Source, &info.Entries, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last import: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, importedAt); parseErr == nil {
		info.ImportedAt = ts
	}
	return &info, nil
}

func encodeExtra(extra map[string]string) (any, error) {
	if len(extra) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
