package main

import (
	"fmt"
	"os"

	"github.com/autositefix/autositefix/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	err := cli.Execute(version, commit, date)
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if cli.IsUsageError(err) {
		os.Exit(2)
	}
	os.Exit(1)
}
