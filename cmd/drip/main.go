// Package main is the entry point for the drip CLI.
package main

import (
	"os"

	"github.com/pheano/drip/cmd/drip/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
