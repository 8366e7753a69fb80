// Traceline CLI - generate, inspect, and validate trace identifiers
package main

import (
	"os"

	"github.com/traceline/traceline-go/cmd/traceline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
