package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"dramarec/internal/catalog"
	"dramarec/internal/config"
	"dramarec/internal/logging"
	"dramarec/internal/recommend"
	"dramarec/internal/similarity"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	engineOnce sync.Once
	engine     *recommend.Engine
	engineErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// ensureEngine loads the catalog and builds the similarity index once per
// process.
func (c *commandContext) ensureEngine(ctx context.Context) (*recommend.Engine, error) {
	c.engineOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.engineErr = err
			return
		}
		logger, err := c.ensureLogger()
		if err != nil {
			c.engineErr = err
			return
		}
		records, err := catalog.Open(ctx, cfg)
		if err != nil {
			c.engineErr = fmt.Errorf("load catalog: %w", err)
			return
		}
		engine, err := recommend.Build(records, similarity.Options{MaxEntries: cfg.Similarity.MaxEntries}, logger)
		if err != nil {
			c.engineErr = err
			return
		}
		logging.NewComponentLogger(logger, "cli").Debug("catalog loaded",
			logging.String("source", cfg.Catalog.Source),
			logging.Int("entries", engine.Len()),
		)
		c.engine = engine
	})
	return c.engine, c.engineErr
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
