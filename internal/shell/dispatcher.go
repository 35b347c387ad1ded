// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/matt-FFFFFF/shellmd/internal/platform"
)

const comSpecProbe = "%ComSpec%"

// Dispatcher runs commands in a target shell from the detected host.
// The zero value is not usable, use New or set both fields.
type Dispatcher struct {
	Probe  platform.HostProbe
	Runner Runner
}

// New returns a Dispatcher that probes the running system and spawns real processes.
func New() *Dispatcher {
	return &Dispatcher{
		Probe:  &platform.SystemProbe{},
		Runner: &ExecRunner{},
	}
}

// Run executes args in target and returns the processed stdout.
// ok is false when the command produced no output at all, which is distinct from ("", true).
// A nil opts uses DefaultOptions.
func (d *Dispatcher) Run(
	ctx context.Context,
	target platform.Target,
	args []string,
	opts *Options,
) (output string, ok bool, err error) {
	if len(args) == 0 {
		return "", false, ErrEmptyCommand
	}

	host, err := platform.Detect(ctx, d.Probe)
	if err != nil {
		return "", false, err
	}

	return d.run(ctx, host, target, args, opts)
}

func (d *Dispatcher) run(
	ctx context.Context,
	host platform.Host,
	target platform.Target,
	args []string,
	opts *Options,
) (string, bool, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	logger := ctxlog.Logger(ctx).With("source", host.String(), "target", target.String())

	resolved, err := d.resolveTarget(ctx, host, target)
	if err != nil {
		return "", false, err
	}

	if opts.Verbose {
		logger.Info("dispatching command", "resolved", resolved.String(), "args", args)
	}

	inv, err := Dispatch(host, resolved, args)
	if err != nil {
		return "", false, err
	}

	raw, err := d.Runner.Run(ctx, inv)
	if err != nil {
		return "", false, err
	}

	if len(raw) == 0 {
		logger.Debug("command produced no output")
		return "", false, nil
	}

	text, err := Decode(raw, opts.Encoding)
	if err != nil {
		return "", false, err
	}

	return Format(text, resolved, opts), true, nil
}

// resolveTarget replaces TargetWindows with the host's configured default shell.
func (d *Dispatcher) resolveTarget(
	ctx context.Context,
	host platform.Host,
	target platform.Target,
) (platform.Target, error) {
	if !target.Valid() {
		return 0, fmt.Errorf("%w: %s", platform.ErrUnexpectedValue, target)
	}

	if target != platform.TargetWindows {
		return target, nil
	}

	if host == platform.HostLinux {
		return 0, platform.NewErrInvalidTarget(host, target)
	}

	return d.defaultShell(ctx, host)
}

// DefaultShell reports which shell the Windows host is configured to use (%ComSpec%).
// It fails with ErrUnknownPlatform on hosts other than Windows and WSL.
func (d *Dispatcher) DefaultShell(ctx context.Context) (platform.Target, error) {
	host, err := platform.Detect(ctx, d.Probe)
	if err != nil {
		return 0, err
	}

	return d.defaultShell(ctx, host)
}

func (d *Dispatcher) defaultShell(ctx context.Context, host platform.Host) (platform.Target, error) {
	if host != platform.HostWindows && host != platform.HostWSL {
		return 0, platform.NewErrUnknownPlatform(host.String())
	}

	raw, err := d.Runner.Run(ctx, Invocation{Args: []string{cmdExe, cmdSwitchWSL, "echo", comSpecProbe}})
	if err != nil {
		return 0, err
	}

	comSpec, err := Decode(raw, "")
	if err != nil {
		return 0, err
	}

	comSpec = strings.TrimSuffix(comSpec, crlf)

	ctxlog.Debug(ctx, "default shell", "comspec", comSpec)

	return ClassifyShell(comSpec)
}

// ClassifyShell maps a ComSpec path to CMD or PowerShell by its executable name.
// Matching is a case-insensitive suffix match on the backslash-separated file name.
func ClassifyShell(comSpec string) (platform.Target, error) {
	lower := strings.ToLower(comSpec)

	switch {
	case strings.HasSuffix(lower, `\cmd.exe`):
		return platform.TargetCMD, nil
	case strings.HasSuffix(lower, `\powershell.exe`), strings.HasSuffix(lower, `\pwsh.exe`):
		return platform.TargetPowerShell, nil
	}

	return 0, platform.NewErrUnknownShell(comSpec)
}

// Windows runs args in the host's configured default Windows shell.
func (d *Dispatcher) Windows(ctx context.Context, args []string, opts *Options) (string, bool, error) {
	return d.Run(ctx, platform.TargetWindows, args, opts)
}

// CMD runs args in the Windows command interpreter.
func (d *Dispatcher) CMD(ctx context.Context, args []string, opts *Options) (string, bool, error) {
	return d.Run(ctx, platform.TargetCMD, args, opts)
}

// PowerShell runs args in Windows PowerShell.
func (d *Dispatcher) PowerShell(ctx context.Context, args []string, opts *Options) (string, bool, error) {
	return d.Run(ctx, platform.TargetPowerShell, args, opts)
}

// WSL runs args in the WSL Linux environment.
func (d *Dispatcher) WSL(ctx context.Context, args []string, opts *Options) (string, bool, error) {
	return d.Run(ctx, platform.TargetWSL, args, opts)
}

// Linux runs args in a Linux environment (WSL when the host is Windows).
func (d *Dispatcher) Linux(ctx context.Context, args []string, opts *Options) (string, bool, error) {
	return d.Run(ctx, platform.TargetLinux, args, opts)
}
