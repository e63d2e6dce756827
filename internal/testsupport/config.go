package testsupport

import (
	"path/filepath"
	"testing"

	"dramarec/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test. The
// catalog path points at a sample CSV written by WithSampleCatalog; without
// that option the file does not exist.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Catalog.Path = filepath.Join(base, "catalog.csv")
	cfgVal.Catalog.Database = filepath.Join(base, "data", "catalog.db")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.API.Bind = "127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSampleCatalog writes SampleCSV to the configured catalog path.
func WithSampleCatalog() ConfigOption {
	return func(b *configBuilder) {
		WriteCatalog(b.t, b.cfg.Catalog.Path, SampleCSV)
	}
}

// WithCatalog writes the provided CSV content to the configured catalog path.
func WithCatalog(content string) ConfigOption {
	return func(b *configBuilder) {
		WriteCatalog(b.t, b.cfg.Catalog.Path, content)
	}
}

// WithSource sets the catalog source.
func WithSource(source string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.Source = source
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Catalog.Path)
}
