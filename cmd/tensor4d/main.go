// Package main provides the tensor4d CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0"

func main() {
	if err := NewCLI().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
