package main

import (
	"os"

	"github.com/ougirez/workforce-planner/cmd/planner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
