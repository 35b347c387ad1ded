// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mdgen

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/spf13/afero"
)

const (
	outputPerm = 0o644
)

var (
	// ErrOpenInput is returned when the input file cannot be opened.
	ErrOpenInput = errors.New("cannot open input file")
	// ErrCreateOutput is returned when the output file cannot be created.
	ErrCreateOutput = errors.New("cannot create output file")
	// ErrReadInput is returned when reading the input fails part way.
	ErrReadInput = errors.New("cannot read input file")
	// ErrWriteOutput is returned when a stub cannot be written.
	ErrWriteOutput = errors.New("cannot write output")
)

// FsFactory returns the filesystem New uses.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Generator writes Markdown stubs for the declarations in a file.
type Generator struct {
	Fs afero.Fs
	// Stdout receives every line, whether or not an output path is given.
	Stdout io.Writer
	Syntax Syntax
	// Append opens the output path for appending instead of truncating it.
	Append bool
}

// New returns a Generator on FsFactory() writing to os.Stdout with DefaultSyntax.
func New() *Generator {
	return &Generator{
		Fs:     FsFactory(),
		Stdout: os.Stdout,
		Syntax: DefaultSyntax(),
	}
}

// Generate scans in and writes a stub per declaration to Stdout and, when out is not empty, to out.
// The first malformed declaration stops the scan; stubs already written are kept.
func (g *Generator) Generate(ctx context.Context, in, out string) (err error) {
	logger := ctxlog.Logger(ctx).With("input", in)

	src, err := g.Fs.Open(in)
	if err != nil {
		return errors.Join(ErrOpenInput, err)
	}

	defer src.Close() //nolint:errcheck

	w := g.Stdout
	if w == nil {
		w = io.Discard
	}

	if out != "" {
		flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if g.Append {
			flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		}

		dst, oerr := g.Fs.OpenFile(out, flags, outputPerm)
		if oerr != nil {
			return errors.Join(ErrCreateOutput, oerr)
		}

		defer func() {
			if cerr := dst.Close(); cerr != nil && err == nil {
				err = errors.Join(ErrWriteOutput, cerr)
			}
		}()

		w = io.MultiWriter(w, dst)
	}

	n, err := g.scan(ctx, src, w)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	logger.Debug("stubs generated", "count", n)

	return nil
}

// GenerateFrom writes stubs for the declarations read from r to w.
func (g *Generator) GenerateFrom(ctx context.Context, r io.Reader, w io.Writer) error {
	_, err := g.scan(ctx, r, w)
	return err
}

func (g *Generator) scan(ctx context.Context, r io.Reader, w io.Writer) (int, error) {
	br := bufio.NewReader(r)
	count := 0

	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		// Lines have no length limit; the last one may lack a newline.
		line, rerr := br.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return count, errors.Join(ErrReadInput, rerr)
		}

		if line == "" && rerr != nil {
			return count, nil
		}

		decl, err := ParseLine(g.Syntax, line)
		if err != nil {
			return count, err
		}

		if decl != nil {
			if err := g.Syntax.Render(w, decl); err != nil {
				return count, errors.Join(ErrWriteOutput, err)
			}

			count++
		}

		if rerr != nil {
			return count, nil
		}
	}
}
