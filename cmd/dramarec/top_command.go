package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dramarec/internal/api"
)

func newTopCommand(ctx *commandContext) *cobra.Command {
	var page int
	var perPage int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Browse the catalog by personal rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("per-page") {
				perPage = cfg.Recommend.PageSize
			}
			if page < 1 {
				return fmt.Errorf("--page must be a positive integer")
			}
			if perPage < 1 {
				return fmt.Errorf("--per-page must be a positive integer")
			}

			engine, err := ctx.ensureEngine(cmd.Context())
			if err != nil {
				return err
			}
			records := engine.TopRated(page, perPage)
			totalPages := engine.PageCount(perPage)

			if jsonOut {
				return writeJSON(cmd, api.TopRatedResponse{
					Page:       page,
					PerPage:    perPage,
					TotalPages: totalPages,
					Results:    api.FromRecords(records),
				})
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintf(out, "No dramas on page %d (%d pages total)\n", page, totalPages)
				return nil
			}
			title := fmt.Sprintf("Top rated dramas (page %d of %d)", page, totalPages)
			renderRecords(out, title, (page-1)*perPage+1, records, nil)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Entries per page (defaults to recommend.page_size)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
