package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List tag maps, or print one as JSON",
		Long: `Without arguments, presets lists the built-in tag maps and any declared in
the [tagmaps] table of domfuzz.toml. With a name, it prints that tag map.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range a.registry.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			tm, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")

			return enc.Encode(tm)
		},
	}
}
