package main

import (
	"os"

	"github.com/katalvlaran/chroma/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
