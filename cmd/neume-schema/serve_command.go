package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neume-network/schema/internal/httpapi"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var (
		bind     string
		failFast bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the definitions and a validation endpoint over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			if bind == "" {
				bind = cfg.Server.Bind
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			runCtx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := httpapi.New(logger, ctx.compileOptions(failFast)...)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(runCtx, bind)
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Report only the first diagnostic per request")
	return cmd
}
