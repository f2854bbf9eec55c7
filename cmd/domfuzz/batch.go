package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domfuzz/config"
	"github.com/katalvlaran/domfuzz/fixture"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		outDir string
		format string
		jobs   int
	)

	cmd := &cobra.Command{
		Use:   "batch <experiment>",
		Short: "Generate every fixture of an experiment",
		Long: `Batch samples domArgs.samples replay tuples from the experiment seed and
writes the fixtures in sample order:

  jsonl    fixtures.jsonl, one {"tags":…,"data":document} object per line
  csv      fixtures.csv, metadata only, one row per fixture
  msgpack  corpus.msgpack, complete fixtures for replay
  html     one standalone .html file per fixture

Output directory and format default to the [output] table of domfuzz.toml.
When [metrics].textfile is set, generation metrics are written there
after the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := config.LoadExperiment(args[0])
			if err != nil {
				return err
			}
			if exp.Indent == "" {
				exp.Indent = a.tool.Run.Indent
			}

			if !cmd.Flags().Changed("out") {
				outDir = a.tool.Path(a.tool.Output.Dir)
			}
			if !cmd.Flags().Changed("format") {
				format = a.tool.Output.Format
			}
			if !cmd.Flags().Changed("jobs") {
				jobs = a.tool.Run.Jobs
			}
			if jobs < 1 {
				return fmt.Errorf("--jobs=%d: want ≥ 1", jobs)
			}

			w, err := newBatchWriter(format, outDir)
			if err != nil {
				return err
			}

			metrics := fixture.NewMetrics()
			n, err := fixture.Batch(cmd.Context(), exp, w.write,
				a.fixtureOptions(fixture.WithMetrics(metrics), fixture.WithJobs(jobs))...)
			if cerr := w.close(); err == nil {
				err = cerr
			}

			if textfile := a.tool.Metrics.Textfile; textfile != "" {
				if merr := metrics.WriteToTextfile(a.tool.Path(textfile)); merr != nil {
					a.logger.Warn("metrics textfile not written", "path", textfile, "error", merr)
				}
			}
			if err != nil {
				return fmt.Errorf("batch stopped after %d fixtures: %w", n, err)
			}

			color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "wrote %d fixtures to %s\n", n, w.path())

			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: jsonl, csv, msgpack or html (default from config)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "parallel generators (default from config)")

	return cmd
}
