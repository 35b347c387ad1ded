// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"

	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
)

const (
	maxBufferSize        = 8 * 1024 * 1024 // 8MB
	commandSwitchWindows = "/C"            // Command switch for the host cmd.exe
	winSystem32          = "System32"      // Directory where cmd.exe is located on Windows.
	winSystemRootEnv     = "SystemRoot"    // Environment variable for the Windows system root.
	winSystemRootDefault = `C:\Windows`
)

var (
	// ErrEmptyCommand is returned when there is nothing to run.
	ErrEmptyCommand = errors.New("empty command")
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToReadBuffer is returned when the process stdout could not be read.
	ErrFailedToReadBuffer = errors.New("failed to read buffer")
	// ErrBufferOverflow is returned when the output exceeds the max size.
	ErrBufferOverflow = fmt.Errorf("output exceeds max size of %d bytes", maxBufferSize)
)

// Runner executes an invocation and returns the raw bytes it wrote to stdout.
type Runner interface {
	Run(ctx context.Context, inv Invocation) ([]byte, error)
}

var _ Runner = (*ExecRunner)(nil)

// ExecRunner runs invocations as child processes.
// A non-zero exit code is not an error: only the output matters to callers.
type ExecRunner struct {
	Stderr    io.Writer // Where the child's stderr goes, defaults to os.Stderr.
	MaxOutput int64     // Stdout capture limit in bytes, defaults to 8MB.
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) ([]byte, error) {
	if len(inv.Args) == 0 {
		return nil, ErrEmptyCommand
	}

	logger := ctxlog.Logger(ctx).With("runner", "exec")

	name, args := inv.Args[0], inv.Args[1:]
	if inv.HostShell {
		name = hostShell()
		args = slices.Concat([]string{commandSwitchWindows}, inv.Args)
	}

	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	limit := r.MaxOutput
	if limit <= 0 {
		limit = maxBufferSize
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("starting process", "path", name, "args", args)

	if err := cmd.Start(); err != nil {
		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	out, readErr := readAllUpToMax(ctx, stdout, limit)
	if errors.Is(readErr, ErrBufferOverflow) {
		// Keep draining so the child is not blocked on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		logger.Debug("process exited with non-zero code", "exitCode", exitErr.ExitCode())
		waitErr = nil
	}

	if waitErr != nil {
		return out, errors.Join(readErr, waitErr)
	}

	logger.Debug("process finished", "stdoutBytes", len(out))

	return out, readErr
}

func readAllUpToMax(ctx context.Context, r io.Reader, maxBufferSize int64) ([]byte, error) {
	var buf bytes.Buffer

	n, err := io.CopyN(&buf, r, maxBufferSize+1)
	if err != nil && err != io.EOF {
		return nil, errors.Join(ErrFailedToReadBuffer, err)
	}

	if n > maxBufferSize {
		ctxlog.Debug(ctx,
			"buffer overflow in readAllUpToMax",
			"bytesRead", n,
			"maxBytes", maxBufferSize,
		)

		return buf.Bytes()[:maxBufferSize], ErrBufferOverflow
	}

	return buf.Bytes(), nil
}

// hostShell returns the absolute path of the Windows command interpreter.
func hostShell() string {
	systemRoot := os.Getenv(winSystemRootEnv)
	if systemRoot == "" {
		systemRoot = winSystemRootDefault
	}

	return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe)
}
