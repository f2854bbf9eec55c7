// Package config loads the two configuration documents of domfuzz.
//
// An Experiment describes one batch: how to sample DOM parameters and, when
// present, how to draw the companion CSS. It is read from YAML or JSON (the
// JSON experiment specs of older corpora decode unchanged), and the order of
// every weight table is preserved.
//
// A Tool is the per-checkout domfuzz.toml holding operator defaults (output
// directory and format, worker count, random source, log level, metrics
// textfile, extra tag maps). FindTool searches for it from a directory
// upward.
package config
