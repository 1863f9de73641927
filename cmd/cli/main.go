// Package main is the entry point for the fabric-price CLI.
package main

import (
	"os"

	"fabric-price/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
