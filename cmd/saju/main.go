// Package main provides the CLI for the saju Four Pillars calculator.
package main

import (
	"os"

	"github.com/leapstack-labs/saju/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
