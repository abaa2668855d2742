package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/version"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seqkit",
		Short: "Lazy cursor pipelines from the command line",
		Long: `seqkit runs the demo cursor pipelines: squared even multiples of 3 from
the Fibonacci sequence, and a sorted word count over text lines.

Configuration is read from --config or the first of ./cmd/seqkit/config.yml,
./config/seqkit.yml, ./config/config.yml, ./seqkit.yml and ./config.yml.
SEQKIT_* environment variables override file values.`,
		Version:       version.Get().Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newFibCmd(a),
		newWordCountCmd(a),
		newExplainCmd(),
		newServeCmd(a),
		newVersionCmd(),
	)
	return cmd
}
