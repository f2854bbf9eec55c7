package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/domfuzz/internal/version"
	"github.com/katalvlaran/domfuzz/tagmap"
)

type versionPayload struct {
	Tool         string `json:"tool"`
	Version      string `json:"version"`
	GitCommit    string `json:"git_commit,omitempty"`
	BuildDate    string `json:"build_date,omitempty"`
	AlexaVersion string `json:"alexa_preset"`
}

func newVersionCmd(_ *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			switch format {
			case "pretty":
				fmt.Fprintln(out, version.Pretty())
				return nil
			case "json":
				return json.NewEncoder(out).Encode(versionPayload{
					Tool:         "domfuzz",
					Version:      version.Version,
					GitCommit:    version.GitCommit,
					BuildDate:    version.BuildDate,
					AlexaVersion: tagmap.AlexaVersion,
				})
			}

			return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")

	return cmd
}
