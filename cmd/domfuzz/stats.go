package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domfuzz/stats"
)

func newStatsCmd(_ *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [file.html...]",
		Short: "Measure the shape of HTML fragments",
		Long: `Stats parses each fragment in a <body> context and reports element and
text counts, branch factor and depth. With no files it reads stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			out := cmd.OutOrStdout()
			for _, name := range args {
				s, err := gatherFile(cmd.InOrStdin(), name)
				if err != nil {
					return err
				}
				if asJSON {
					if err = json.NewEncoder(out).Encode(struct {
						File string `json:"file"`
						stats.Stats
					}{name, s}); err != nil {
						return err
					}
					continue
				}
				printStats(out, name, s)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "one JSON object per file")

	return cmd
}

func gatherFile(stdin io.Reader, name string) (stats.Stats, error) {
	if name == "-" {
		return stats.Gather(stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return stats.Stats{}, err
	}
	defer f.Close()

	s, err := stats.Gather(f)
	if err != nil {
		return stats.Stats{}, fmt.Errorf("%s: %w", name, err)
	}

	return s, nil
}

func printStats(w io.Writer, name string, s stats.Stats) {
	color.New(color.Bold).Fprintln(w, name)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  nodes\t%d\t(%d elements, %d texts)\n", s.Nodes(), s.Elements, s.Texts)
	fmt.Fprintf(tw, "  ids\t%d\n", s.IDs)
	fmt.Fprintf(tw, "  branch factor\t%.2f\tmax %d\n", s.MeanBranchFactor, s.MaxBranchFactor)
	fmt.Fprintf(tw, "  depth\t%.2f\tmax %d\n", s.MeanDepth, s.MaxDepth)
	if s.StyleRules > 0 {
		fmt.Fprintf(tw, "  style rules\t%d\n", s.StyleRules)
	}
	for _, tc := range s.Tags {
		fmt.Fprintf(tw, "  <%s>\t%d\n", tc.Tag, tc.Count)
	}
	_ = tw.Flush()
}
