// Segbar draws segmented progress bars.
//
// A bar is a row of equally sized segments inside a frame. Each segment
// fills left to right as progress advances. Bars can be rendered to a PNG
// image or directly on the terminal, one character cell per pixel.
//
// Usage:
//
//	segbar [command] [flags]
//
// See 'segbar --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muurk/segbar/internal/segbar"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewCLI().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps bar errors to their status code so scripts can tell
// failures apart. Any other error exits with 1.
func exitCode(err error) int {
	if s := segbar.StatusOf(err); s > segbar.StatusSuccess {
		return int(s)
	}
	return 1
}
