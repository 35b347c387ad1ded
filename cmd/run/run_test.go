// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/shellmd/cmd/cmdstate"
	"github.com/matt-FFFFFF/shellmd/internal/config"
	"github.com/matt-FFFFFF/shellmd/internal/platform"
	"github.com/matt-FFFFFF/shellmd/internal/shell"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type fakeRunner struct {
	calls   []shell.Invocation
	outputs map[string]string
}

func (f *fakeRunner) Run(_ context.Context, inv shell.Invocation) ([]byte, error) {
	f.calls = append(f.calls, inv)
	return []byte(f.outputs[strings.Join(inv.Args, " ")]), nil
}

func stubDispatcher(t *testing.T, desc string, outputs map[string]string) *fakeRunner {
	t.Helper()

	r := &fakeRunner{outputs: outputs}
	stubs := gostub.Stub(&cmdstate.DispatcherFactory, func() *shell.Dispatcher {
		return &shell.Dispatcher{Probe: platform.Static(desc), Runner: r}
	})
	t.Cleanup(stubs.Reset)

	return r
}

func runCmd(ctx context.Context, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	root := &cli.Command{
		Name:           "shellmd",
		Writer:         buf,
		ErrWriter:      &bytes.Buffer{},
		Commands:       []*cli.Command{NewCommand()},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	err := root.Run(ctx, append([]string{"shellmd", "run"}, args...))

	return buf.String(), err
}

func TestRunLinuxHost(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		outputs map[string]string
		want    string
		wantErr bool
	}{
		{
			name:    "native shell by default",
			args:    []string{"--", "echo", "hi"},
			outputs: map[string]string{"echo hi": "hi\n"},
			want:    "hi\n",
		},
		{
			name:    "tab indents every line",
			args:    []string{"--tab", "--", "ls"},
			outputs: map[string]string{"ls": "a\nb\n"},
			want:    "\ta\n\tb\n",
		},
		{
			name:    "no strip keeps whitespace",
			args:    []string{"--no-strip", "--", "pad"},
			outputs: map[string]string{"pad": " x \n"},
			want:    " x \n\n",
		},
		{
			name:    "newline only is still output",
			args:    []string{"--", "blank"},
			outputs: map[string]string{"blank": "\n"},
			want:    "\n",
		},
		{
			name:    "no output at all",
			args:    []string{"--", "true"},
			wantErr: true,
		},
		{
			name:    "cmd is not reachable from linux",
			args:    []string{"--target", "cmd", "--", "ver"},
			wantErr: true,
		},
		{
			name:    "unknown target",
			args:    []string{"--target", "fish", "--", "ls"},
			wantErr: true,
		},
		{
			name:    "missing command",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubDispatcher(t, "linux-6.8.0-40-generic", tt.outputs)

			out, err := runCmd(context.Background(), tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, out)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunWSLHostCMD(t *testing.T) {
	r := stubDispatcher(t, "linux-5.15.153.1-microsoft-standard-WSL2", map[string]string{
		"cmd.exe /c ver": "\r\nMicrosoft Windows [Version 10.0.19045]\r\n\r\n",
	})

	out, err := runCmd(context.Background(), "--target", "cmd", "--", "ver")
	require.NoError(t, err)
	assert.Equal(t, "Microsoft Windows [Version 10.0.19045]\n", out)

	require.Len(t, r.calls, 1)
	assert.False(t, r.calls[0].HostShell)
}

func TestRunKeepCarriage(t *testing.T) {
	stubDispatcher(t, "linux-5.15.153.1-microsoft-standard-WSL2", map[string]string{
		"cmd.exe /c dir": "a\r\nb\r\n",
	})

	out, err := runCmd(context.Background(), "--target", "cmd", "--keep-carriage", "--", "dir")
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb\n", out)
}

func TestRunUsesConfiguredTarget(t *testing.T) {
	r := stubDispatcher(t, "linux-5.15.153.1-microsoft-standard-WSL2", map[string]string{
		"powershell.exe Get-Date": "today\r\n",
	})

	cfg := config.Default()
	cfg.Shell.Target = "powershell"
	cfg.Shell.Tab = true

	out, err := runCmd(cmdstate.WithConfig(context.Background(), cfg), "--", "Get-Date")
	require.NoError(t, err)
	assert.Equal(t, "\ttoday\n", out)
	require.Len(t, r.calls, 1)
}
