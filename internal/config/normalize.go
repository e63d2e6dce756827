package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables that override file values when set.
const (
	EnvCatalogPath = "DRAMAREC_CATALOG_PATH"
	EnvDatabase    = "DRAMAREC_DATABASE"
	EnvAPIBind     = "DRAMAREC_API_BIND"
	EnvLogLevel    = "DRAMAREC_LOG_LEVEL"
)

func (c *Config) normalize() error {
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeRecommend()
	c.normalizeAPI()
	return c.normalizeLogging()
}

func (c *Config) normalizeCatalog() error {
	if value, ok := lookupEnv(EnvCatalogPath); ok {
		c.Catalog.Path = value
	}
	if value, ok := lookupEnv(EnvDatabase); ok {
		c.Catalog.Database = value
	}

	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	if c.Catalog.Source == "" {
		c.Catalog.Source = defaultCatalogSource
	}

	var err error
	if c.Catalog.Path, err = ExpandPath(strings.TrimSpace(c.Catalog.Path)); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	if strings.TrimSpace(c.Catalog.Database) == "" {
		c.Catalog.Database = defaultCatalogDatabase
	}
	if c.Catalog.Database, err = ExpandPath(strings.TrimSpace(c.Catalog.Database)); err != nil {
		return fmt.Errorf("catalog.database: %w", err)
	}
	return nil
}

func (c *Config) normalizeRecommend() {
	if c.Recommend.DefaultCount == 0 {
		c.Recommend.DefaultCount = defaultRecommendCount
	}
	if c.Recommend.MaxCount == 0 {
		c.Recommend.MaxCount = defaultMaxCount
	}
	if c.Recommend.PageSize == 0 {
		c.Recommend.PageSize = defaultPageSize
	}
	if c.Similarity.MaxEntries == 0 {
		c.Similarity.MaxEntries = defaultMaxEntries
	}
}

func (c *Config) normalizeAPI() {
	if value, ok := lookupEnv(EnvAPIBind); ok {
		c.API.Bind = value
	}
	c.API.Bind = strings.TrimSpace(c.API.Bind)
	if c.API.Bind == "" {
		c.API.Bind = defaultAPIBind
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := lookupEnv(EnvLogLevel); ok {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = ExpandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}
