package main

import (
	"fmt"
	"os"

	"github.com/efikit/bootconf/internal/cmd"
)

// Set by the build process using ldflags.
var version = "unknown"

func main() {
	if err := cmd.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sdbootctl: %s\n", err)
		os.Exit(1)
	}
}
