// Command domfuzz generates deterministic HTML and CSS fuzz fixtures.
//
//	domfuzz generate -b 4 -d 3 --seed 17 --css > fixture.html
//	domfuzz batch experiment.yaml --format msgpack --out corpus/
//	domfuzz serve --addr :8080
//
// Operator defaults are read from the nearest domfuzz.toml above the working
// directory, or from --config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
