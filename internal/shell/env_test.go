// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/matt-FFFFFF/shellmd/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv_RejectsNamesBeforeSpawning(t *testing.T) {
	names := []string{"", "PATH1", "MY VAR", "A-B", "A;rm -rf /", "$HOME", "%PATH%", "ÄBC", "A.B"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			r := &fakeRunner{}
			d := &Dispatcher{Probe: failProbe(t), Runner: r}

			_, ok, err := d.Env(context.Background(), platform.TargetLinux, name)
			require.ErrorIs(t, err, ErrInvalidEnvName)
			assert.False(t, ok)
			assert.Empty(t, r.calls)
		})
	}
}

func TestIsEnvName(t *testing.T) {
	assert.True(t, IsEnvName("PATH"))
	assert.True(t, IsEnvName("my_var"))
	assert.True(t, IsEnvName("_"))
	assert.False(t, IsEnvName(""))
	assert.False(t, IsEnvName("X1"))
}

func TestEnv_CMD(t *testing.T) {
	ctx := context.Background()

	t.Run("defined", func(t *testing.T) {
		d, r := newDispatcher(descWSL, map[string]string{
			"cmd.exe /c echo %USERNAME%": "alice\r\n",
		})

		v, ok, err := d.Env(ctx, platform.TargetCMD, "USERNAME")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "alice", v)
		assert.Equal(t, []string{"cmd.exe", "/c", "echo", "%USERNAME%"}, r.calls[0].Args)
	})

	t.Run("undefined echoes the pattern", func(t *testing.T) {
		d, _ := newDispatcher(descWSL, map[string]string{
			"cmd.exe /c echo %NOPE%": "%NOPE%\r\n",
		})

		v, ok, err := d.Env(ctx, platform.TargetCMD, "NOPE")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("literal value when check disabled", func(t *testing.T) {
		d, _ := newDispatcher(descWSL, map[string]string{
			"cmd.exe /c echo %house%": "%house%\r\n",
		})

		v, ok, err := d.Env(ctx, platform.TargetCMD, "house", WithLiteralCMDValue())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "%house%", v)
	})
}

func TestEnv_PowerShell(t *testing.T) {
	ctx := context.Background()

	d, r := newDispatcher(descWindows, map[string]string{
		"powershell.exe echo $env:TEMP": "C:\\Temp\r\n",
	})

	v, ok, err := d.Env(ctx, platform.TargetPowerShell, "TEMP")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "C:\\Temp", v)
	assert.True(t, r.calls[0].HostShell)

	v, ok, err = d.Env(ctx, platform.TargetPowerShell, "MISSING")
	require.NoError(t, err)
	assert.False(t, ok, "powershell prints nothing for an undefined variable")
	assert.Empty(t, v)
}

func TestEnv_Linux(t *testing.T) {
	ctx := context.Background()

	t.Run("linux host expands through sh", func(t *testing.T) {
		d, r := newDispatcher(descLinux, map[string]string{
			"/bin/sh -c echo $HOME": "/home/alice\n",
			"/bin/sh -c echo $NOPE": "\n",
		})

		v, ok, err := d.LinuxEnv(ctx, "HOME")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "/home/alice", v)
		assert.Equal(t, Invocation{Args: []string{"/bin/sh", "-c", "echo $HOME"}}, r.calls[0])

		v, ok, err = d.LinuxEnv(ctx, "NOPE")
		require.NoError(t, err)
		assert.False(t, ok, "an empty line means the variable is unset")
		assert.Empty(t, v)
	})

	t.Run("windows host goes through wsl", func(t *testing.T) {
		d, r := newDispatcher(descWindows, map[string]string{
			"wsl echo $SHELL": "/bin/bash\n",
		})

		v, ok, err := d.Env(ctx, platform.TargetWSL, "SHELL")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "/bin/bash", v)
		assert.Equal(t, Invocation{Args: []string{"wsl", "echo", "$SHELL"}, HostShell: true}, r.calls[0])
	})

	t.Run("linux host cannot read cmd", func(t *testing.T) {
		d, r := newDispatcher(descLinux, nil)

		_, _, err := d.Env(ctx, platform.TargetCMD, "PATH")
		require.ErrorIs(t, err, platform.ErrInvalidTarget)
		assert.Empty(t, r.calls)
	})
}

func TestWindowsEnv(t *testing.T) {
	d, r := newDispatcher(descWindows, map[string]string{
		"cmd.exe /c echo %ComSpec%": "C:\\WINDOWS\\system32\\cmd.exe\r\n",
		"echo %OS%":                 "Windows_NT\r\n",
	})

	v, ok, err := d.WindowsEnv(context.Background(), "OS")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Windows_NT", v)
	require.Len(t, r.calls, 2)
	assert.Equal(t, Invocation{Args: []string{"echo", "%OS%"}, HostShell: true}, r.calls[1])
}

func TestHostEnv(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := ctxlog.New(context.Background(), logger)

	d, _ := newDispatcher(descLinux, map[string]string{
		"/bin/sh -c echo $USER": "alice\n",
	})

	v, ok, err := d.HostEnv(ctx, "USER") //nolint:staticcheck
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
	assert.Contains(t, buf.String(), "WARN")

	d, _ = newDispatcher("plan9", nil)

	_, _, err = d.HostEnv(ctx, "USER") //nolint:staticcheck
	require.ErrorIs(t, err, platform.ErrUnknownPlatform)
}
