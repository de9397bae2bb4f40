// circlefavicon masks an icon into a circular PNG with a transparent
// background.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/iconkit/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewCircleFaviconCmd()))
}
