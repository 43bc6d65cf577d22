// Package main is the entry point for the shenshu CLI.
package main

import (
	"os"

	"github.com/f3rmion/shenshu/cmd/shenshu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
