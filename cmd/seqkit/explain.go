package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/demo"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "explain PIPELINE",
		Short:             "Print the stage tree of a demo pipeline",
		Example:           "  seqkit explain fib",
		Args:              cobra.ExactArgs(1),
		ValidArgs:         demo.Names(),
		PersistentPreRunE: skipConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := demo.Explain(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), tree)
			return err
		},
	}
}
