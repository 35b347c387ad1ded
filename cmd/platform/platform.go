// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package platform is the command that reports the detected host and its shells.
package platform

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/shellmd/cmd/cmdstate"
	"github.com/matt-FFFFFF/shellmd/internal/color"
	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/matt-FFFFFF/shellmd/internal/platform"
	"github.com/matt-FFFFFF/shellmd/internal/shell"
	"github.com/urfave/cli/v3"
)

const cliExitStr = ""

// NewCommand returns the platform command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:   "platform",
		Usage:  "Show the detected host platform and which target shells it can reach",
		Action: actionFunc,
	}
}

// PlatformCmd is the platform command.
var PlatformCmd = NewCommand()

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	d := cmdstate.DispatcherFactory()
	w := cmd.Root().Writer

	desc := d.Probe.Describe(ctx)
	host := platform.Classify(desc)

	writeField(w, "description", desc)
	writeField(w, "host", host.String())

	if host == platform.HostUnknown {
		logger.Error("Unsupported host platform", "description", desc)
		return cli.Exit(cliExitStr, 1)
	}

	if host != platform.HostLinux {
		def, err := d.DefaultShell(ctx)
		if err != nil {
			logger.Warn("Failed to resolve the default Windows shell", "error", err)
			writeField(w, "default shell", color.Colorize("unknown", color.FgYellow))
		} else {
			writeField(w, "default shell", def.String())
		}
	}

	names := make([]string, 0, len(platform.Targets()))

	for _, t := range platform.Targets() {
		if reachable(host, t) {
			names = append(names, color.Colorize(t.String(), color.FgGreen))
		} else {
			names = append(names, color.Colorize(t.String(), color.Faint))
		}
	}

	writeField(w, "targets", strings.Join(names, " "))

	for _, t := range platform.Targets() {
		if t == platform.TargetWindows || !reachable(host, t) {
			continue
		}

		path, err := shell.Locate(host, t)
		if err != nil {
			logger.Debug("program lookup failed", "target", t.String(), "error", err)
			path = color.Colorize("not found", color.FgYellow)
		}

		writeField(w, strings.ToLower(t.String()), path)
	}

	return nil
}

// reachable reports whether target can be dispatched from host. The Windows target resolves to
// the default shell, so it is reachable wherever a Windows shell is.
func reachable(host platform.Host, target platform.Target) bool {
	if target == platform.TargetWindows {
		return host == platform.HostWindows || host == platform.HostWSL
	}

	_, err := shell.Dispatch(host, target, nil)

	return err == nil
}

func writeField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", color.Colorize(fmt.Sprintf("%-14s", label+":"), color.Bold), value) //nolint:errcheck
}
