package main

import (
	"log/slog"
	"os"

	"github.com/dohaquest/questlinks/cmd/questlinks"
	"github.com/dohaquest/questlinks/logging"
)

func main() {
	// Replaced once flags are parsed and log-level is known.
	slog.SetDefault(logging.NewLogger(os.Stderr, slog.LevelInfo))

	questlinks.Execute()
}
