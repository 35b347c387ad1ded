// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config is the command that prints the effective configuration.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/shellmd/cmd/cmdstate"
	"github.com/urfave/cli/v3"
)

// ErrWriteConfig is returned when the configuration cannot be written out.
var ErrWriteConfig = errors.New("failed to write config")

// NewCommand returns the config command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration as YAML",
		Description: `Print the configuration after merging the defaults, the shellmd.yaml file (from the working
directory or $HOME/.config/shellmd) and SHELLMD_* environment variables.`,
		Action: actionFunc,
	}
}

// ConfigCmd is the config command.
var ConfigCmd = NewCommand()

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	cfg := cmdstate.Config(ctx)
	w := cmd.Root().Writer

	if f := cfg.File(); f != "" {
		fmt.Fprintf(w, "# %s\n", f) //nolint:errcheck
	}

	if err := cfg.WriteYAML(w); err != nil {
		return errors.Join(ErrWriteConfig, err)
	}

	return nil
}
