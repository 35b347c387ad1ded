// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repl is the interactive command prompt that dispatches each line to a target shell.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/shellmd/cmd/cmdstate"
	"github.com/matt-FFFFFF/shellmd/cmd/run"
	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/matt-FFFFFF/shellmd/internal/platform"
	"github.com/matt-FFFFFF/shellmd/internal/shell"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const (
	targetFlag      = "target"
	cliExitStr      = ""
	targetDirective = ":target"
)

type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

var prompterFactory = func() prompter {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)

	return l
}

// NewCommand returns the repl command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Interactive prompt that runs each line in a target shell",
		Description: `Read command lines interactively and run each one in the target shell, printing the
processed output. Lines are split on whitespace; quoting is not interpreted.

  :target NAME   switch the target shell
  exit, quit     leave the prompt (Ctrl+C and Ctrl+D also work)`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    targetFlag,
				Aliases: []string{"t"},
				Usage:   run.TargetFlagUsage,
			},
		},
		Action: actionFunc,
	}
}

// ReplCmd is the repl command.
var ReplCmd = NewCommand()

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	d := cmdstate.DispatcherFactory()

	target, err := cmdstate.ResolveTarget(ctx, cmd.String(targetFlag), d.Probe)
	if err != nil {
		logger.Error("Failed to resolve target shell", "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	s := &session{
		d:      d,
		w:      cmd.Root().Writer,
		target: target,
		opts:   cmdstate.Config(ctx).Options(),
	}

	line := prompterFactory()
	defer line.Close() //nolint:errcheck

	fmt.Fprintln(s.w, "Type `exit` or `quit`, or press Ctrl+C, to leave.") //nolint:errcheck

	for ctx.Err() == nil {
		input, err := line.Prompt(s.prompt())

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			return nil
		default:
			return fmt.Errorf("reading line: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if input == "exit" || input == "quit" {
			return nil
		}

		s.handle(ctx, input)
	}

	return nil
}

type session struct {
	d      *shell.Dispatcher
	w      io.Writer
	target platform.Target
	opts   *shell.Options
}

func (s *session) prompt() string {
	return strings.ToLower(s.target.String()) + "> "
}

// handle runs one line. Failures are reported and the prompt continues.
func (s *session) handle(ctx context.Context, input string) {
	fields := strings.Fields(input)

	if fields[0] == targetDirective {
		if len(fields) != 2 {
			ctxlog.Error(ctx, "Usage: :target NAME")
			return
		}

		t, err := platform.ParseTarget(fields[1])
		if err != nil {
			ctxlog.Error(ctx, "Unknown target", "error", err)
			return
		}

		s.target = t

		return
	}

	out, ok, err := s.d.Run(ctx, s.target, fields, s.opts)
	if err != nil {
		ctxlog.Error(ctx, "Command failed", "error", err)
		return
	}

	if ok {
		fmt.Fprintln(s.w, out) //nolint:errcheck
	}
}
