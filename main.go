package main

import (
	"os"

	"github.com/taskwell/taskwell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
