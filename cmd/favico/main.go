// favico - a multi-resolution favicon generator
//
// favico resamples a single image to a set of square sizes and packs them
// into one Windows ICO file.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/favico/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
