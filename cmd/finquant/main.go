package main

import (
	"os"

	"github.com/finquant/finquant/cmd/finquant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
