package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/story-core/internal/infrastructure/httpapi"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long:  "Serves story assembly, stateless generation and story sessions over HTTP until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")

	return cmd
}

func runServe(cmd *cobra.Command, addr string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		serverCfg := d.Config.Server
		if addr != "" {
			serverCfg.Addr = addr
		}

		srv := httpapi.NewServer(serverCfg, httpapi.Options{
			Assemble: d.AssembleHandler,
			Generate: d.GenerateHandler,
			Stories:  d.StoryHandler,
			Logger:   logger,
		})

		logger.Info("starting server",
			zap.String("addr", serverCfg.Addr),
			zap.Bool("writer_available", d.GenerateHandler.Available()),
		)
		return srv.Run(ctx)
	})
}
