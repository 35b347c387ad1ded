// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/matt-FFFFFF/shellmd/internal/platform"
)

const binSh = "/bin/sh"

// ErrInvalidEnvName is returned when a variable name contains anything but letters and underscores.
var ErrInvalidEnvName = errors.New("variable name can only contain letters and underscores")

// EnvOption configures an environment lookup.
type EnvOption func(*envOptions)

type envOptions struct {
	literalCMD bool
}

// WithLiteralCMDValue disables the CMD absence check.
//
// CMD echoes %NAME% back unchanged when NAME is undefined, so by default that output is treated as
// "not set". A variable can legitimately hold its own %NAME% pattern (set NAME=%%NAME%%); this
// option returns the text as a value in that case.
func WithLiteralCMDValue() EnvOption {
	return func(o *envOptions) {
		o.literalCMD = true
	}
}

// IsEnvName reports whether name is non-empty and made only of ASCII letters and underscores.
func IsEnvName(name string) bool {
	if name == "" {
		return false
	}

	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		default:
			return false
		}
	}

	return true
}

// Env reads the environment variable name as seen by target.
// ok is false when the variable is not set (or is empty). The name is validated before any
// process is spawned.
//
// Absence is detected per shell: CMD echoes the literal %name% pattern, PowerShell prints
// nothing, and Linux shells print an empty line.
func (d *Dispatcher) Env(
	ctx context.Context,
	target platform.Target,
	name string,
	opts ...EnvOption,
) (value string, ok bool, err error) {
	if !IsEnvName(name) {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidEnvName, name)
	}

	o := &envOptions{}
	for _, opt := range opts {
		opt(o)
	}

	host, err := platform.Detect(ctx, d.Probe)
	if err != nil {
		return "", false, err
	}

	resolved, err := d.resolveTarget(ctx, host, target)
	if err != nil {
		return "", false, err
	}

	cmdPattern := "%" + name + "%"

	var args []string

	switch resolved {
	case platform.TargetCMD:
		args = []string{"echo", cmdPattern}
	case platform.TargetPowerShell:
		args = []string{"echo", "$env:" + name}
	case platform.TargetWSL, platform.TargetLinux:
		if host == platform.HostWindows {
			// wsl hands its arguments to the distribution's shell, which expands them.
			args = []string{"echo", "$" + name}
		} else {
			args = []string{binSh, "-c", "echo $" + name}
		}
	default:
		return "", false, platform.NewErrInvalidTarget(host, target)
	}

	value, ok, err = d.run(ctx, host, resolved, args, DefaultOptions())
	if err != nil || !ok {
		return "", false, err
	}

	if resolved == platform.TargetCMD && !o.literalCMD && value == cmdPattern {
		return "", false, nil
	}

	if value == "" {
		return "", false, nil
	}

	return value, true, nil
}

// WindowsEnv reads name through the host's configured default Windows shell.
func (d *Dispatcher) WindowsEnv(ctx context.Context, name string) (string, bool, error) {
	return d.Env(ctx, platform.TargetWindows, name)
}

// LinuxEnv reads name through a Linux shell (WSL when the host is Windows).
func (d *Dispatcher) LinuxEnv(ctx context.Context, name string) (string, bool, error) {
	return d.Env(ctx, platform.TargetLinux, name)
}

// HostEnv reads name through whatever shell the current host uses.
//
// Deprecated: the result depends on the host platform and, on Windows, on the configured default
// shell, so the same call behaves differently across machines. Use WindowsEnv or LinuxEnv, or Env
// when a specific shell is required.
func (d *Dispatcher) HostEnv(ctx context.Context, name string) (string, bool, error) {
	ctxlog.Warn(ctx,
		"HostEnv behaviour changes with the host platform and default shell",
		"suggestion", "use WindowsEnv for Windows, LinuxEnv for Linux, or Env for a specific shell",
	)

	host, err := platform.Detect(ctx, d.Probe)
	if err != nil {
		return "", false, err
	}

	target, err := platform.HostTarget(host)
	if err != nil {
		return "", false, err
	}

	return d.Env(ctx, target, name)
}
