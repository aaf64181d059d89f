// Package main is the entry point for the sqlgram CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlgram/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
