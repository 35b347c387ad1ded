// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/shellmd/internal/platform"
	"github.com/spf13/afero"
)

const (
	goosWindows  = "windows"
	pathEnv      = "PATH"
	pathExtEnv   = "PATHEXT"
	defaultExts  = ".com;.exe;.bat;.cmd"
	nativeShell  = "sh"
	execBitsMask = 0o111
)

// ErrProgramNotFound is returned when a program is not in any PATH directory.
var ErrProgramNotFound = errors.New("program not found in PATH")

// FsFactory returns the filesystem LookPath searches.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// LookPath searches the PATH directories for an executable file called name.
// On Windows the PATHEXT extensions are also tried when name has none.
func LookPath(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyCommand
	}

	fs := FsFactory()
	candidates := []string{name}

	if runtime.GOOS == goosWindows && filepath.Ext(name) == "" {
		exts := os.Getenv(pathExtEnv)
		if exts == "" {
			exts = defaultExts
		}

		for _, ext := range strings.Split(exts, ";") {
			if ext != "" {
				candidates = append(candidates, name+strings.ToLower(ext))
			}
		}
	}

	for _, dir := range filepath.SplitList(os.Getenv(pathEnv)) {
		if dir == "" {
			continue
		}

		for _, c := range candidates {
			p := filepath.Join(dir, c)

			info, err := fs.Stat(p)
			if err != nil || info.IsDir() {
				continue
			}

			if runtime.GOOS != goosWindows && info.Mode()&execBitsMask == 0 {
				continue
			}

			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrProgramNotFound, name)
}

// Program names the executable that a host×target invocation starts: the shell wrapper when there
// is one, the host command interpreter for plain CMD on Windows, and sh when args run directly.
func Program(host platform.Host, target platform.Target) (string, error) {
	inv, err := Dispatch(host, target, nil)
	if err != nil {
		return "", err
	}

	switch {
	case len(inv.Args) > 0:
		return inv.Args[0], nil
	case inv.HostShell:
		return cmdExe, nil
	}

	return nativeShell, nil
}

// Locate returns the PATH location of the program behind a host×target invocation.
func Locate(host platform.Host, target platform.Target) (string, error) {
	name, err := Program(host, target)
	if err != nil {
		return "", err
	}

	return LookPath(name)
}
