package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// printItems writes one item per line, or a single JSON array.
func printItems[T any](w io.Writer, items []T, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		if items == nil {
			items = []T{}
		}
		return enc.Encode(items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}

// skipConfig overrides the root's config loading for commands that do not
// need it.
func skipConfig(*cobra.Command, []string) error { return nil }
