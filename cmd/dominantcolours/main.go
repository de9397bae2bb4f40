// dominantcolours reports the most frequent colours of an image as hex codes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/iconkit/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewDominantColoursCmd()))
}
