// Package main provides the prestoql CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/prestoql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
