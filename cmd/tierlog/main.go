package main

import (
	"os"

	"github.com/rzbill/tierlog/internal/cmd/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
