package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/demo"
	apperrors "github.com/kbukum/seqkit/errors"
)

func newWordCountCmd(a *app) *cobra.Command {
	var (
		sample bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "wordcount [FILE...]",
		Short: "Count words in text lines, sorted by word",
		Long: `wordcount splits every line on whitespace and prints (word,count) pairs
in ascending word order. Files are read in order; with no files, or with
"-", standard input is read. --sample counts the built-in sample lines.`,
		Example: "  seqkit wordcount notes.txt\n  echo 'a b a' | seqkit wordcount --json",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, closeFiles, err := openLines(cmd, args, sample)
			if err != nil {
				return err
			}
			defer closeFiles()

			c := demo.CountWords(lines, cursor.WithLimit(a.cfg.Pipeline.BufferLimit))
			items, err := runPipeline(cmd.Context(), a, demo.PipelineWordCount, c)
			if err != nil {
				return err
			}
			return printItems(cmd.OutOrStdout(), items, asJSON)
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "count the built-in sample lines")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON array")
	return cmd
}

// openLines returns one line cursor over every input in order. The returned
// func closes the opened files.
func openLines(cmd *cobra.Command, args []string, sample bool) (cursor.Cursor[string], func(), error) {
	if sample {
		return cursor.FromSlice(demo.SampleLines()), func() {}, nil
	}
	if len(args) == 0 {
		return demo.Lines(cmd.InOrStdin()), func() {}, nil
	}

	var files []*os.File
	closeFiles := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	sources := make([]cursor.Cursor[string], 0, len(args))
	for _, path := range args {
		if path == "-" {
			sources = append(sources, demo.Lines(cmd.InOrStdin()))
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			closeFiles()
			return nil, nil, apperrors.SourceFailed(path, err)
		}
		files = append(files, f)
		sources = append(sources, demo.Lines(f))
	}
	return cursor.Concat(sources...), closeFiles, nil
}
