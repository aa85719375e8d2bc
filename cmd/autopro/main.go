// Package main provides the autopro command.
package main

import (
	"os"

	"github.com/sylvanlake-autopro/autopro/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
