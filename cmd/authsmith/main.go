package main

import (
	"os"

	"github.com/authsmith/authsmith/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
