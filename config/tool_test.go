package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domfuzz/config"
)

func TestFindTool_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	want := filepath.Join(root, "a", config.ToolFile)
	require.NoError(t, os.WriteFile(want, []byte("[run]\njobs = 2\n"), 0o644))

	got, ok, err := config.FindTool(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestLoadTool(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "divs.yaml"), []byte("body:\n  div: 1\ndiv:\n  \"\": 1\n"), 0o644))
	path := filepath.Join(dir, config.ToolFile)
	require.NoError(t, os.WriteFile(path, []byte(`
[output]
dir = "out"
format = "csv"

[run]
jobs = 3
rng = "pcg"
post_order_ids = true

[log]
level = "debug"

[metrics]
textfile = "domfuzz.prom"

[tagmaps]
divs = "divs.yaml"
`), 0o644))

	cfg, err := config.LoadTool(path)
	require.NoError(t, err)
	require.Equal(t, "csv", cfg.Output.Format)
	require.Equal(t, 3, cfg.Run.Jobs)
	require.Equal(t, "pcg", cfg.Run.RNG)
	require.True(t, cfg.Run.PostOrderIDs)
	require.Equal(t, "  ", cfg.Run.Indent) // default kept
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, filepath.Join(dir, "out"), cfg.Path(cfg.Output.Dir))
	require.Equal(t, filepath.Join(dir, "domfuzz.prom"), cfg.Path(cfg.Metrics.Textfile))

	reg, err := cfg.Registry()
	require.NoError(t, err)
	require.Equal(t, []string{"alexa", "divs", "simple"}, reg.Names())

	resolved, err := config.ResolveTool(dir)
	require.NoError(t, err)
	require.Equal(t, cfg, resolved)
}

func TestLoadTool_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":      "[run\n",
		"unknown key": "[run]\nworkers = 2\n",
		"format":      "[output]\nformat = \"xml\"\n",
		"rng":         "[run]\nrng = \"mt19937\"\n",
		"jobs":        "[run]\njobs = 0\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.ToolFile)
			require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
			_, err := config.LoadTool(path)
			require.Error(t, err)
		})
	}
}

func TestTool_RegistryMissingFile(t *testing.T) {
	cfg := config.DefaultTool()
	cfg.Root = t.TempDir()
	cfg.TagMaps = map[string]string{"gone": "gone.json"}

	_, err := cfg.Registry()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultTool_Valid(t *testing.T) {
	require.False(t, config.DefaultTool().Run.PostOrderIDs)

	require.NoError(t, config.DefaultTool().Validate())
}
