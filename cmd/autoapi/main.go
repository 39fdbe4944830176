// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

// Package main is the entry point for the autoapi CLI.
package main

import (
	"fmt"
	"os"

	"github.com/qinhj5/autoapi/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
