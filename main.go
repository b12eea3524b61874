// Package main is the entry point for the postpipe CLI.
package main

import (
	"context"
	"os"

	"github.com/gaurav-prasanna/postpipe/cmd"
	"github.com/gaurav-prasanna/postpipe/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cmd.Execute(context.Background()); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		return 1
	}
	return 0
}
