// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run is the command that runs a command line in a chosen shell.
package run

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/matt-FFFFFF/shellmd/cmd/cmdstate"
	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	targetFlag       = "target"
	tabFlag          = "tab"
	noStripFlag      = "no-strip"
	keepCarriageFlag = "keep-carriage"
	encodingFlag     = "encoding"
	verboseFlag      = "verbose"
	cliExitStr       = ""
)

// TargetFlagUsage describes the accepted --target values.
const TargetFlagUsage = "Target shell: windows (the host's default shell), cmd, powershell, wsl or linux. " +
	"Defaults to the configured target, then the host's own shell."

// NewCommand returns the run command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run a command in a target shell and print its processed output",
		ArgsUsage: "[--] command [args...]",
		Description: `Run a command in the chosen shell dialect from whichever host shellmd is running on.

On Windows, CMD commands go through the host command interpreter, PowerShell through
powershell.exe and Linux commands through wsl. On WSL the Windows shells are reached through
their executables. On Linux only the linux and wsl targets are available.

Stdout is captured, decoded, stripped of surrounding whitespace and, for CMD and PowerShell,
of carriage returns. Stderr is passed through. Nothing is printed when the command writes no
output; the command then exits with status 1.

Use -- before the command when it has flags of its own.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    targetFlag,
				Aliases: []string{"t"},
				Usage:   TargetFlagUsage,
			},
			&cli.BoolFlag{
				Name:  tabFlag,
				Usage: "Indent every output line with a tab",
			},
			&cli.BoolFlag{
				Name:  noStripFlag,
				Usage: "Keep surrounding whitespace",
			},
			&cli.BoolFlag{
				Name:  keepCarriageFlag,
				Usage: "Keep carriage returns in CMD and PowerShell output",
			},
			&cli.StringFlag{
				Name:  encodingFlag,
				Usage: "Output encoding name (e.g. cp437, windows-1252, utf-16le). Defaults to UTF-8 with BOM detection.",
			},
			&cli.BoolFlag{
				Name:    verboseFlag,
				Aliases: []string{"v"},
				Usage:   "Log the host and resolved target shell",
			},
		},
		Action: actionFunc,
	}
}

// RunCmd is the run command.
var RunCmd = NewCommand()

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	args := cmd.Args().Slice()
	if len(args) == 0 {
		logger.Error("Please specify the command to run.")
		return cli.Exit(cliExitStr, 1)
	}

	d := cmdstate.DispatcherFactory()

	target, err := cmdstate.ResolveTarget(ctx, cmd.String(targetFlag), d.Probe)
	if err != nil {
		logger.Error("Failed to resolve target shell", "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	opts := cmdstate.Config(ctx).Options()
	if cmd.IsSet(tabFlag) {
		opts.Tab = cmd.Bool(tabFlag)
	}

	if cmd.Bool(noStripFlag) {
		opts.Strip = false
	}

	if cmd.Bool(keepCarriageFlag) {
		opts.RemoveCarriage = false
	}

	if cmd.IsSet(encodingFlag) {
		opts.Encoding = cmd.String(encodingFlag)
	}

	opts.Verbose = cmd.Bool(verboseFlag)

	// verbose output is logged at info level
	if opts.Verbose && ctxlog.LevelVar.Level() > slog.LevelInfo {
		ctxlog.LevelVar.Set(slog.LevelInfo)
	}

	out, ok, err := d.Run(ctx, target, args, opts)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to run command in %s", target), "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	if !ok {
		logger.Debug("command produced no output")
		return cli.Exit(cliExitStr, 1)
	}

	fmt.Fprintln(cmd.Root().Writer, out) //nolint:errcheck

	return nil
}
