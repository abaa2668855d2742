package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo pipelines over HTTP",
		Long: `serve exposes /v1/fibonacci, /v1/wordcount and /v1/explain/{pipeline}
plus /healthz and /version. HTTP/1.1 and cleartext HTTP/2 are accepted on
the same port. The server stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Server
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			handlers := server.NewHandlers(server.PipelineOptions{
				BufferLimit: a.cfg.Pipeline.BufferLimit,
				DefaultTake: a.cfg.Pipeline.FibTake,
				MaxLines:    a.cfg.Pipeline.MaxLines,
			}, a.metrics, logger.Get(componentHandlers))
			return server.New(cfg, logger.Get(componentServer), handlers).Serve(cmd.Context())
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "listen port (0 picks a free one)")
	return cmd
}
