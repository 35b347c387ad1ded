// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package env is the command that reads an environment variable through a target shell.
package env

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/shellmd/cmd/cmdstate"
	"github.com/matt-FFFFFF/shellmd/cmd/run"
	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/matt-FFFFFF/shellmd/internal/shell"
	"github.com/urfave/cli/v3"
)

const (
	targetFlag     = "target"
	cmdLiteralFlag = "cmd-literal"
	cliExitStr     = ""
)

// NewCommand returns the env command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "env",
		Usage: "Print an environment variable as seen by a target shell",
		Description: `Read an environment variable back through the chosen shell. The name may only contain
letters and underscores. Exits with status 1 when the variable is not set.

CMD echoes %NAME% unchanged for an undefined variable, so that output is treated as unset unless
--cmd-literal is given.`,
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    targetFlag,
				Aliases: []string{"t"},
				Usage:   run.TargetFlagUsage,
			},
			&cli.BoolFlag{
				Name:  cmdLiteralFlag,
				Usage: "Return a literal %NAME% from CMD as the value instead of treating it as unset",
			},
		},
		Action: actionFunc,
	}
}

// EnvCmd is the env command.
var EnvCmd = NewCommand()

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	name := cmd.Args().First()
	if name == "" {
		logger.Error("Please specify the variable name.")
		return cli.Exit(cliExitStr, 1)
	}

	d := cmdstate.DispatcherFactory()

	target, err := cmdstate.ResolveTarget(ctx, cmd.String(targetFlag), d.Probe)
	if err != nil {
		logger.Error("Failed to resolve target shell", "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	var opts []shell.EnvOption
	if cmd.Bool(cmdLiteralFlag) {
		opts = append(opts, shell.WithLiteralCMDValue())
	}

	value, ok, err := d.Env(ctx, target, name, opts...)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to read %s", name), "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	if !ok {
		logger.Debug("variable not set", "name", name, "target", target.String())
		return cli.Exit(cliExitStr, 1)
	}

	fmt.Fprintln(cmd.Root().Writer, value) //nolint:errcheck

	return nil
}
