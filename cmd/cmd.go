// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/shellmd/cmd/cmdstate"
	"github.com/matt-FFFFFF/shellmd/cmd/config"
	"github.com/matt-FFFFFF/shellmd/cmd/env"
	"github.com/matt-FFFFFF/shellmd/cmd/mdgen"
	"github.com/matt-FFFFFF/shellmd/cmd/platform"
	"github.com/matt-FFFFFF/shellmd/cmd/repl"
	"github.com/matt-FFFFFF/shellmd/cmd/run"
	internalconfig "github.com/matt-FFFFFF/shellmd/internal/config"
	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
)

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			mdgen.NewCommand(),
			run.NewCommand(),
			env.NewCommand(),
			platform.NewCommand(),
			config.NewCommand(),
			repl.NewCommand(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      configFlag,
				Aliases:   []string{"c"},
				Usage:     "Read settings from this file instead of searching for shellmd.yaml",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    logLevelFlag,
				Aliases: []string{"l"},
				Usage:   "Log level: debug, info, warn or error",
				Sources: cli.EnvVars(ctxlog.LogLevelEnvVar),
			},
		},
		Before:    before,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "shellmd",
		Description: `shellmd bundles two small tools.

mdgen writes Markdown documentation stubs for the class and function declarations in a source
file.

run, env and repl run commands and read environment variables in a chosen shell dialect (CMD,
PowerShell, WSL or a Linux shell) from Windows, WSL or Linux hosts, normalising the output.`,
		Usage:     "shellmd run --target cmd -- ver",
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		EnableShellCompletion: true,
	}
}

// RootCmd is the root command for the CLI.
var RootCmd = NewRootCmd()

// before loads the configuration into the context and applies the log level.
func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := internalconfig.LoadFile(ctx, cmd.String(configFlag))
	if err != nil {
		return ctx, cli.Exit(err.Error(), 1)
	}

	level := cfg.LogLevel
	if cmd.IsSet(logLevelFlag) {
		level = cmd.String(logLevelFlag)
	}

	if err := ctxlog.SetLevel(level); err != nil {
		return ctx, cli.Exit(err.Error(), 1)
	}

	return cmdstate.WithConfig(ctx, cfg), nil
}
