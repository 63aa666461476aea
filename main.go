package main

import (
	"os"

	"github.com/firefly-engineering/wsbgen/cmd"
	"github.com/firefly-engineering/wsbgen/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
