// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the shellmd command-line application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/shellmd"
	"github.com/matt-FFFFFF/shellmd/cmd"
	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/matt-FFFFFF/shellmd/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	sigCh := signalbroker.New(ctx)
	go signalbroker.Watch(ctx, sigCh, cancel)

	cmd.RootCmd.Version = version()

	err := cmd.RootCmd.Run(ctx, os.Args)

	signalbroker.Stop(sigCh)

	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		cancel()
		os.Exit(1)
	}

	cancel()

	if err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}

// version formats the build stamp shown by --version.
func version() string {
	return fmt.Sprintf("%s (commit: %s)", shellmd.Version, shellmd.Commit)
}
