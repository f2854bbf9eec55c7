package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domfuzz/fixture"
	"github.com/katalvlaran/domfuzz/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr     string
		metrics  bool
		maxNodes int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve fixtures over HTTP",
		Long: `Serve answers GET /fixture?tagMap=&branchiness=&depthicity=&seed=[&css=1]
with the generated document, so a browser under test can load fixtures by
replay tuple. GET /presets lists tag maps; /metrics is mounted with --metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []server.Option{
				server.WithLogger(a.logger),
				server.WithRegistry(a.registry),
				server.WithIndent(a.tool.Run.Indent),
				server.WithMaxNodes(maxNodes),
				server.WithFixtureOptions(a.fixtureOptions()...),
			}
			if metrics {
				opts = append(opts, server.WithMetrics(fixture.NewMetrics()))
			}

			return server.New(opts...).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "expose Prometheus metrics on /metrics")
	cmd.Flags().Int64Var(&maxNodes, "max-nodes", server.DefaultMaxNodes, "reject requests predicting more nodes (0 disables)")

	return cmd
}
