// hueforge - A procedural colour palette generator
//
// hueforge builds ordered colour palettes for colour pickers from a
// primary and secondary colour using gradient and colour-harmony strategies.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/hueforge/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
