package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domfuzz/config"
	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/sampler"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		count  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "sample <experiment>",
		Short: "Print the replay tuples an experiment would generate",
		Long: `Sample draws (branchiness, depthicity, seed) tuples from the experiment's
domArgs exactly as batch does, without generating any markup. Each line is
one tuple; any of them can be replayed with 'domfuzz generate'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "text" {
				return fmt.Errorf("--format %q: want json or text", format)
			}
			exp, err := config.LoadExperiment(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("count") {
				exp.DOM.Samples = count
			}

			var rejected int
			source, _ := random.SourceByName(a.tool.Run.RNG)
			r := random.New(exp.DOM.Seed, source)
			params, err := sampler.Sample(r, exp.DOM.Bounds, exp.DOM.Samples, exp.DOM.TagMap,
				sampler.WithObserver(func(_ sampler.Params, accepted bool) {
					if !accepted {
						rejected++
					}
				}))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, p := range params {
				if format == "text" {
					fmt.Fprintln(out, p.String())
					continue
				}
				if err = enc.Encode(p); err != nil {
					return err
				}
			}

			a.logger.Info("sampled", "seed", r.Seed(), "accepted", len(params), "rejected", rejected)
			color.New(color.Faint).Fprintf(cmd.ErrOrStderr(), "%d tuples, %d rejected draws\n", len(params), rejected)

			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "override domArgs.samples")
	cmd.Flags().StringVar(&format, "format", "json", "output format (json|text)")

	return cmd
}
