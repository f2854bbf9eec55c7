package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domfuzz/config"
	"github.com/katalvlaran/domfuzz/dom"
	"github.com/katalvlaran/domfuzz/fixture"
	"github.com/katalvlaran/domfuzz/internal/logging"
	"github.com/katalvlaran/domfuzz/tagmap"
)

// app is the state shared by every subcommand, resolved once from the
// persistent flags before the subcommand runs.
type app struct {
	configPath   string
	logLevel     string
	colorMode    string
	postOrderIDs bool

	tool     config.Tool
	logger   *slog.Logger
	registry *tagmap.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "domfuzz",
		Short:         "Deterministic HTML and CSS fuzz fixture generator",
		Long:          `domfuzz grows random DOM trees from weighted tag maps and random CSS selectors over their ids. Every fixture is reproducible from its (tagMap, branchiness, depthicity, seed) tuple.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to domfuzz.toml (default: nearest above the working directory)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().BoolVar(&a.postOrderIDs, "post-order-ids", false, "number children before their parent, as legacy corpora do (default from config)")

	root.AddCommand(
		newSampleCmd(a),
		newGenerateCmd(a),
		newBatchCmd(a),
		newStatsCmd(a),
		newPresetsCmd(a),
		newServeCmd(a),
		newVersionCmd(a),
	)

	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\nsee '%s --help'", err, c.CommandPath())
	})

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	switch a.colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
	default:
		return fmt.Errorf("--color %q: want auto, on or off", a.colorMode)
	}

	var err error
	if a.configPath != "" {
		a.tool, err = config.LoadTool(a.configPath)
	} else {
		a.tool, err = config.ResolveTool(".")
	}
	if err != nil {
		return err
	}

	levelName := a.tool.Log.Level
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.logger = logging.NewWriter(cmd.ErrOrStderr(), level)

	if cmd.Flags().Changed("post-order-ids") {
		a.tool.Run.PostOrderIDs = a.postOrderIDs
	}

	a.registry, err = a.tool.Registry()
	if err != nil {
		return err
	}

	return nil
}

// fixtureOptions wires the resolved configuration into the pipeline.
func (a *app) fixtureOptions(extra ...fixture.Option) []fixture.Option {
	opts := []fixture.Option{
		fixture.WithRegistry(a.registry),
		fixture.WithLogger(a.logger),
		fixture.WithSource(a.tool.Run.RNG),
		fixture.WithJobs(a.tool.Run.Jobs),
	}
	if a.tool.Run.PostOrderIDs {
		opts = append(opts, fixture.WithDOMOptions(dom.WithPostOrderIDs()))
	}

	return append(opts, extra...)
}

// printError reports a command failure; main owns error output because the
// root command silences cobra's.
func printError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}
