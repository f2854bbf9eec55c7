// SPDX-License-Identifier: MIT
// Package: domfuzz/config
//
// tool.go — domfuzz.toml operator defaults.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/tagmap"
)

// ToolFile is the file name FindTool looks for.
const ToolFile = "domfuzz.toml"

// Output formats.
const (
	FormatJSONL   = "jsonl"
	FormatCSV     = "csv"
	FormatMsgpack = "msgpack"
	FormatHTML    = "html"
)

// Tool holds operator defaults. Zero fields fall back to DefaultTool.
type Tool struct {
	Output  OutputConfig      `toml:"output"`
	Run     RunConfig         `toml:"run"`
	Log     LogConfig         `toml:"log"`
	Metrics MetricsConfig     `toml:"metrics"`
	TagMaps map[string]string `toml:"tagmaps"`

	// Root is the directory holding the loaded file; relative paths resolve
	// against it.
	Root string `toml:"-"`
}

// OutputConfig selects where and how batches are written.
type OutputConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

// RunConfig tunes generation. PostOrderIDs numbers children before their
// parent, as corpora from the legacy generator do.
type RunConfig struct {
	Jobs         int    `toml:"jobs"`
	RNG          string `toml:"rng"`
	Indent       string `toml:"indent"`
	PostOrderIDs bool   `toml:"post_order_ids"`
}

// LogConfig sets the log level name.
type LogConfig struct {
	Level string `toml:"level"`
}

// MetricsConfig names a node-exporter textfile to write after a batch.
type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

// DefaultTool returns the built-in defaults.
func DefaultTool() Tool {
	return Tool{
		Output: OutputConfig{Dir: ".", Format: FormatJSONL},
		Run:    RunConfig{Jobs: runtime.GOMAXPROCS(0), RNG: random.SourceAlea, Indent: "  "},
		Log:    LogConfig{Level: "info"},
	}
}

// FindTool walks from startDir to the filesystem root looking for ToolFile.
func FindTool(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ToolFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false, nil
}

// LoadTool decodes path over DefaultTool and validates the result.
func LoadTool(path string) (Tool, error) {
	cfg := DefaultTool()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Tool{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Tool{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Root = filepath.Dir(path)

	if err = cfg.Validate(); err != nil {
		return Tool{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ResolveTool loads the nearest ToolFile above startDir, or the defaults when
// there is none.
func ResolveTool(startDir string) (Tool, error) {
	path, ok, err := FindTool(startDir)
	if err != nil {
		return Tool{}, err
	}
	if !ok {
		return DefaultTool(), nil
	}

	return LoadTool(path)
}

// Validate checks enumerated fields.
func (t Tool) Validate() error {
	switch t.Output.Format {
	case FormatJSONL, FormatCSV, FormatMsgpack, FormatHTML:
	default:
		return fmt.Errorf("[output].format %q: want jsonl, csv, msgpack or html", t.Output.Format)
	}
	if _, ok := random.SourceByName(t.Run.RNG); !ok {
		return fmt.Errorf("[run].rng %q: want %s or %s", t.Run.RNG, random.SourceAlea, random.SourcePCG)
	}
	if t.Run.Jobs < 1 {
		return fmt.Errorf("[run].jobs=%d: want ≥ 1", t.Run.Jobs)
	}

	return nil
}

// Path resolves p against Root.
func (t Tool) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || t.Root == "" {
		return p
	}

	return filepath.Join(t.Root, p)
}

// Registry returns the built-in tag maps plus every [tagmaps] entry, each
// loaded from its file.
func (t Tool) Registry() (*tagmap.Registry, error) {
	reg := tagmap.NewRegistry()
	for name, p := range t.TagMaps {
		f, err := os.Open(t.Path(p))
		if err != nil {
			return nil, fmt.Errorf("[tagmaps].%s: %w", name, err)
		}
		tm, err := tagmap.Load(name, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("[tagmaps].%s: %w", name, err)
		}
		reg.Register(tm)
	}

	return reg, nil
}
