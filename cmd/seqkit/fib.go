package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/demo"
	"github.com/kbukum/seqkit/validation"
)

func newFibCmd(a *app) *cobra.Command {
	var (
		take   int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Print squared even multiples of 3 from the Fibonacci sequence",
		Long: `fib keeps the Fibonacci numbers divisible by 3, squares the even ones
and prints the first --take results. Without --take, pipeline.fib_take
from the config applies.`,
		Example: "  seqkit fib --take 5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("take") {
				take = a.cfg.Pipeline.FibTake
			}
			if appErr := validation.New().Range("take", take, 0, demo.MaxFibonacciTake).Validate(); appErr != nil {
				return appErr
			}

			items, err := runPipeline(cmd.Context(), a, demo.PipelineFibonacci, demo.FibonacciPipeline(take))
			if err != nil {
				return err
			}
			return printItems(cmd.OutOrStdout(), items, asJSON)
		},
	}
	cmd.Flags().IntVarP(&take, "take", "n", 5, "number of values to print")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON array")
	return cmd
}
