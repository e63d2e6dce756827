package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dramarec/internal/api"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve recommendations over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if bind != "" {
				cfg.API.Bind = bind
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			engine, err := ctx.ensureEngine(signalCtx)
			if err != nil {
				return err
			}

			srv, err := api.NewServer(cfg, engine, logger)
			if err != nil {
				return err
			}
			if err := srv.Start(signalCtx); err != nil {
				return err
			}
			defer srv.Stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving %d dramas on http://%s\n", engine.Len(), srv.Addr())
			<-signalCtx.Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Override api.bind for this run")
	return cmd
}
