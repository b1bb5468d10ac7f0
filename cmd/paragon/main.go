package main

import (
	"os"

	"github.com/paragon-dev/paragon/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
