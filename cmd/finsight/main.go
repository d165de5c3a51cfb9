package main

import (
	"os"

	"github.com/finsight-dev/finsight/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
