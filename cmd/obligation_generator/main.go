// Package main is the entry point for obligation_generator.
package main

import (
	"os"

	"github.com/SscSPs/finance_tracker/cmd/obligation_generator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
