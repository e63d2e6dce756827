package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSimilarity(); err != nil {
		return err
	}
	if c.API.Bind == "" {
		return errors.New("api.bind must be set")
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case SourceCSV:
		if c.Catalog.Path == "" {
			return errors.New("catalog.path is required when catalog.source is csv")
		}
	case SourceSQLite:
		if c.Catalog.Database == "" {
			return errors.New("catalog.database is required when catalog.source is sqlite")
		}
	default:
		return fmt.Errorf("catalog.source: unsupported value %q (want %q or %q)", c.Catalog.Source, SourceCSV, SourceSQLite)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.MaxCount < 1 {
		return errors.New("recommend.max_count must be positive")
	}
	if c.Recommend.DefaultCount < 1 || c.Recommend.DefaultCount > c.Recommend.MaxCount {
		return fmt.Errorf("recommend.default_count must be between 1 and %d", c.Recommend.MaxCount)
	}
	if c.Recommend.PageSize < 1 {
		return errors.New("recommend.page_size must be positive")
	}
	return nil
}

func (c *Config) validateSimilarity() error {
	if c.Similarity.MaxEntries < 1 {
		return errors.New("similarity.max_entries must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
