// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mdgen is the command that writes Markdown stubs for the declarations in source files.
package mdgen

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/shellmd/cmd/cmdstate"
	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/matt-FFFFFF/shellmd/internal/mdgen"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag   = "file"
	outFlag    = "out"
	cliExitStr = ""
)

// NewCommand returns the mdgen command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "mdgen",
		Usage: "Generate Markdown documentation stubs from class and function declarations",
		Description: `Scan one or more source files for class and function declaration lines and write a
Markdown skeleton for each: a heading, the declaration as a caption, a placeholder description,
a table of base classes or parameters, and the return type.

Output always goes to stdout. When --out is given it is also written to that file; with several
inputs the stubs are concatenated in order.

Input locations use Hashicorp's go-getter syntax, so files can be fetched from git, http and other
sources. See https://github.com/hashicorp/go-getter.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    fileFlag,
				Aliases: []string{"f"},
				Usage:   "Input file location. Specify multiple times for several files.",
			},
			&cli.StringFlag{
				Name:      outFlag,
				Aliases:   []string{"o"},
				Usage:     "Also write the stubs to this file",
				TakesFile: true,
				OnlyOnce:  true,
			},
		},
		Action: actionFunc,
	}
}

// MdgenCmd is the mdgen command.
var MdgenCmd = NewCommand()

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	inputs := cmd.StringSlice(fileFlag)
	if len(inputs) == 0 {
		logger.Error("Please specify at least one input file using the --file or -f flag.")
		return cli.Exit(cliExitStr, 1)
	}

	gen := mdgen.New()
	gen.Stdout = cmd.Root().Writer
	gen.Syntax = cmdstate.Config(ctx).Mdgen

	out := cmd.String(outFlag)
	if out != "" {
		f, err := gen.Fs.Create(out)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to create output file %s: %s", out, err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		f.Close() //nolint:errcheck

		gen.Append = true
	}

	var result *multierror.Error

	for _, in := range inputs {
		if err := generate(ctx, gen, in, out); err != nil {
			logger.Error(fmt.Sprintf("Failed to generate stubs for %s", in), "error", err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", in, err))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if out != "" {
		logger.Info(fmt.Sprintf("Stubs written to %s", out))
	}

	return nil
}

func generate(ctx context.Context, gen *mdgen.Generator, in, out string) error {
	path, cleanup, err := fetch(ctx, in)
	if err != nil {
		return err
	}

	defer cleanup()

	return gen.Generate(ctx, path, out)
}
