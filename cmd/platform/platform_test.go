// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package platform

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/shellmd/cmd/cmdstate"
	"github.com/matt-FFFFFF/shellmd/internal/platform"
	"github.com/matt-FFFFFF/shellmd/internal/shell"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type fakeRunner map[string]string

func (f fakeRunner) Run(_ context.Context, inv shell.Invocation) ([]byte, error) {
	return []byte(f[strings.Join(inv.Args, " ")]), nil
}

func runPlatform(t *testing.T, desc string, outputs fakeRunner) (string, error) {
	t.Helper()

	stubs := gostub.Stub(&cmdstate.DispatcherFactory, func() *shell.Dispatcher {
		return &shell.Dispatcher{Probe: platform.Static(desc), Runner: outputs}
	})
	defer stubs.Reset()

	buf := &bytes.Buffer{}
	root := &cli.Command{
		Name:           "shellmd",
		Writer:         buf,
		ErrWriter:      &bytes.Buffer{},
		Commands:       []*cli.Command{NewCommand()},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	err := root.Run(context.Background(), []string{"shellmd", "platform"})

	return buf.String(), err
}

func TestPlatformLinux(t *testing.T) {
	out, err := runPlatform(t, "linux-6.8.0-40-generic", nil)
	require.NoError(t, err)

	assert.Contains(t, out, "linux-6.8.0-40-generic")
	assert.Regexp(t, `host:\s+Linux`, out)
	assert.NotContains(t, out, "default shell")
	assert.Contains(t, out, "targets:")
}

func TestPlatformWSL(t *testing.T) {
	out, err := runPlatform(t, "linux-5.15.153.1-microsoft-standard-WSL2", fakeRunner{
		`cmd.exe /c echo %ComSpec%`: "C:\\Windows\\system32\\cmd.exe\r\n",
	})
	require.NoError(t, err)

	assert.Regexp(t, `host:\s+WSL`, out)
	assert.Regexp(t, `default shell:\s+CMD`, out)
}

func TestPlatformUnknown(t *testing.T) {
	out, err := runPlatform(t, "darwin", nil)
	require.Error(t, err)
	assert.Regexp(t, `host:\s+Unknown`, out)
}

func TestReachable(t *testing.T) {
	assert.True(t, reachable(platform.HostLinux, platform.TargetLinux))
	assert.True(t, reachable(platform.HostLinux, platform.TargetWSL))
	assert.False(t, reachable(platform.HostLinux, platform.TargetCMD))
	assert.False(t, reachable(platform.HostLinux, platform.TargetWindows))
	assert.True(t, reachable(platform.HostWSL, platform.TargetWindows))
	assert.True(t, reachable(platform.HostWindows, platform.TargetPowerShell))
}

func TestPlatformLocatesPrograms(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix PATH semantics")
	}

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bin/sh", []byte("#!"), 0o755))

	stubs := gostub.Stub(&shell.FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	t.Setenv("PATH", "/bin")

	out, err := runPlatform(t, "linux-6.8.0-40-generic", nil)
	require.NoError(t, err)

	assert.Regexp(t, `linux:\s+/bin/sh`, out)
	assert.Regexp(t, `wsl:\s+/bin/sh`, out)
	assert.NotRegexp(t, `cmd:`, out)
}
