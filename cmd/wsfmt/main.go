package main

import (
	"os"

	"github.com/wsfmt/wsfmt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
