package version

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestPretty(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	require.Equal(t, "domfuzz "+Version, Pretty())

	GitCommit, BuildDate = "abc123", "2026-01-02"
	t.Cleanup(func() { GitCommit, BuildDate = "", "" })
	require.Equal(t, "domfuzz "+Version+" (abc123) 2026-01-02", Pretty())
}
