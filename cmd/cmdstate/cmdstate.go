// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate carries state shared by the subcommands: the loaded configuration, and the
// dispatcher factory that tests replace.
package cmdstate

import (
	"context"

	"github.com/matt-FFFFFF/shellmd/internal/config"
	"github.com/matt-FFFFFF/shellmd/internal/platform"
	"github.com/matt-FFFFFF/shellmd/internal/shell"
)

type configKey struct{}

// DispatcherFactory builds the dispatcher used by run, env, platform and repl.
var DispatcherFactory = shell.New

// WithConfig returns a context carrying cfg.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// Config returns the configuration stored in ctx, or the built-in defaults.
func Config(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}

	return config.Default()
}

// ResolveTarget picks the target shell: the flag value when given, then the configured target,
// then the native shell of the detected host.
func ResolveTarget(ctx context.Context, flag string, probe platform.HostProbe) (platform.Target, error) {
	if flag != "" {
		return platform.ParseTarget(flag)
	}

	target, ok, err := Config(ctx).Target()
	if err != nil {
		return 0, err
	}

	if ok {
		return target, nil
	}

	host, err := platform.Detect(ctx, probe)
	if err != nil {
		return 0, err
	}

	return platform.HostTarget(host)
}
