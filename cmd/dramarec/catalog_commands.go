package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dramarec/internal/catalog"
	"dramarec/internal/logging"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog maintenance",
	}

	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogInfoCommand(ctx))

	return catalogCmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Parse the catalog file and write the SQLite snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			info, err := catalog.Import(cmd.Context(), cfg)
			if errors.Is(err, catalog.ErrImportInProgress) {
				logging.WarnWithContext(logger, "catalog import skipped", "catalog_import_locked",
					logging.String(logging.FieldErrorHint, "wait for the running import to finish"),
					logging.String(logging.FieldImpact, "snapshot left unchanged"),
				)
				return err
			}
			if err != nil {
				return fmt.Errorf("import catalog: %w", err)
			}
			logging.NewComponentLogger(logger, "catalog").Info("catalog imported",
				logging.String("import_id", info.ID),
				logging.Int("entries", info.Entries),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d dramas from %s into %s\n", info.Entries, info.Source, cfg.Catalog.Database)
			return nil
		},
	}
}

func newCatalogInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show catalog source and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			engine, err := ctx.ensureEngine(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Source:   %s\n", cfg.Catalog.Source)
			fmt.Fprintf(out, "File:     %s\n", cfg.Catalog.Path)
			fmt.Fprintf(out, "Entries:  %d\n", engine.Len())
			fmt.Fprintf(out, "Rated:    %d\n", engine.RatedCount())

			if _, err := os.Stat(cfg.Catalog.Database); err != nil {
				fmt.Fprintln(out, "Snapshot: none")
				return nil
			}
			store, err := catalog.OpenStore(cmd.Context(), cfg.Catalog.Database)
			if err != nil {
				return err
			}
			defer store.Close()
			last, err := store.LastImport(cmd.Context())
			if err != nil {
				return err
			}
			if last == nil {
				fmt.Fprintln(out, "Snapshot: empty")
				return nil
			}
			fmt.Fprintf(out, "Snapshot: %d dramas imported %s (%s)\n",
				last.Entries, last.ImportedAt.Local().Format(time.DateTime), last.ID)
			return nil
		},
	}
}
