package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domfuzz/config"
	"github.com/katalvlaran/domfuzz/fixture"
	"github.com/katalvlaran/domfuzz/sampler"
	"github.com/katalvlaran/domfuzz/tagmap"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		p          sampler.Params
		withCSS    bool
		experiment string
		indent     string
		output     string
		showMeta   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one fixture from a replay tuple",
		Long: `Generate writes the document for one (tagMap, branchiness, depthicity, seed)
tuple. A seed of 0 is derived from the clock and reported with --meta.

With --css the document is prefixed by a <style> block drawn from the same
random stream; selector tables come from --experiment's cssArgs or the
built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := fixture.Request{Params: p, Indent: a.tool.Run.Indent}
			if cmd.Flags().Changed("indent") {
				req.Indent = indent
			}

			switch {
			case experiment != "":
				exp, err := config.LoadExperiment(experiment)
				if err != nil {
					return err
				}
				if exp.CSS == nil {
					return fmt.Errorf("%s: no cssArgs", experiment)
				}
				req.CSS = fixture.CSSOptionsFrom(exp.CSS)
			case withCSS:
				req.CSS = fixture.DefaultCSSOptions()
			}

			f, err := fixture.Generate(req, a.fixtureOptions()...)
			if err != nil {
				return err
			}

			if err = writeDocument(cmd.OutOrStdout(), output, f.Document); err != nil {
				return err
			}

			if showMeta {
				enc := json.NewEncoder(cmd.ErrOrStderr())
				enc.SetIndent("", "  ")
				return enc.Encode(f.Metadata.Tags())
			}
			replay := p
			replay.Seed = f.Metadata.Seed
			color.New(color.Faint).Fprintf(cmd.ErrOrStderr(), "%s: %d nodes, %d rules\n",
				replay, f.Metadata.NodeCount, f.Metadata.RuleCount)

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&p.TagMap, "tag-map", "t", tagmap.Alexa, "tag map name")
	fl.Int64VarP(&p.Branchiness, "branchiness", "b", 0, "children drawn per element (≥ 1)")
	fl.Int64VarP(&p.Depthicity, "depthicity", "d", 0, "maximum element depth (≥ 0)")
	fl.Uint32VarP(&p.Seed, "seed", "s", 0, "PRNG seed (0 derives one from the clock)")
	fl.BoolVar(&withCSS, "css", false, "prepend a <style> block using the default selector tables")
	fl.StringVar(&experiment, "experiment", "", "take selector tables from this experiment's cssArgs (implies --css)")
	fl.StringVar(&indent, "indent", "", "indent unit (default from config)")
	fl.StringVarP(&output, "output", "o", "-", "write the document to this file")
	fl.BoolVar(&showMeta, "meta", false, "print the fixture metadata as JSON on stderr")
	_ = cmd.MarkFlagRequired("branchiness")
	_ = cmd.MarkFlagRequired("depthicity")

	return cmd
}

// writeDocument writes doc and a newline to path, or to stdout when path is
// "" or "-". A failed close is reported.
func writeDocument(stdout io.Writer, path, doc string) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprintln(stdout, doc)
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(file, doc); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
