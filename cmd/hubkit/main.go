package main

import (
	"os"

	"github.com/forcekit/hubkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
