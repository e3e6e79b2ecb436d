package main

import (
	"fmt"
	"os"

	"github.com/runnerr0/sentistream/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "0.1.0-dev"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "sentistream: %v\n", err)
		os.Exit(1)
	}
}
