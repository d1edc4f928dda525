package main

import (
	"os"

	"github.com/wandb/wandb/stopwatch/cmd/stopwatch/root"
)

func main() {
	exitCode := mainWithExitCode()
	os.Exit(exitCode)
}

func mainWithExitCode() int {
	cmd, cleanup := root.NewRootCmd()
	defer cleanup()

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
