package main

import (
	"os"

	"github.com/cbcberry/berrysite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
