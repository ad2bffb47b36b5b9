package main

import (
	"fmt"
	"os"

	"github.com/kickoff-dev/kickoff/internal/litecli"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	if err := litecli.Run(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
