// Package version holds build information for the domfuzz CLI. The
// variables are overridden at build time via -ldflags, e.g.
//
//	-ldflags "-X github.com/katalvlaran/domfuzz/internal/version.GitCommit=$(git rev-parse HEAD)"
package version

import "github.com/fatih/color"

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	nameColor    = color.New(color.FgCyan, color.Bold)
	versionColor = color.New(color.FgGreen, color.Bold)
	faintColor   = color.New(color.Faint)
)

// Pretty returns a one-line, colorized description of the build. Colors are
// dropped when color.NoColor is set.
func Pretty() string {
	s := nameColor.Sprint("domfuzz") + " " + versionColor.Sprint(Version)
	if GitCommit != "" {
		s += " " + faintColor.Sprint("("+GitCommit+")")
	}
	if BuildDate != "" {
		s += " " + faintColor.Sprint(BuildDate)
	}

	return s
}
