package main

import (
	"os"

	"github.com/KorNxHaidar/Trade-Sim/cmd/tradesim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
