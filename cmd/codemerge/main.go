// Package main provides the codemerge command line entry point.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/codemerge/cmd/codemerge/cmd"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := cmd.Execute(ctx, version, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
