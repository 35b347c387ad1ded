// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdstate

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/shellmd/internal/config"
	"github.com/matt-FFFFFF/shellmd/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, config.Default(), Config(context.Background()))

	cfg := config.Default()
	cfg.Shell.Tab = true
	assert.Same(t, cfg, Config(WithConfig(context.Background(), cfg)))
}

func TestResolveTarget(t *testing.T) {
	withTarget := func(target string) context.Context {
		cfg := config.Default()
		cfg.Shell.Target = target

		return WithConfig(context.Background(), cfg)
	}

	tests := []struct {
		name    string
		ctx     context.Context
		flag    string
		desc    string
		want    platform.Target
		wantErr error
	}{
		{
			name: "flag wins",
			ctx:  withTarget("wsl"),
			flag: "cmd",
			desc: "linux-6.8.0",
			want: platform.TargetCMD,
		},
		{
			name: "config next",
			ctx:  withTarget("pwsh"),
			desc: "linux-6.8.0",
			want: platform.TargetPowerShell,
		},
		{
			name: "linux host native",
			ctx:  context.Background(),
			desc: "linux-6.8.0",
			want: platform.TargetLinux,
		},
		{
			name: "wsl host native",
			ctx:  context.Background(),
			desc: "linux-5.15.153.1-microsoft-standard-WSL2",
			want: platform.TargetWSL,
		},
		{
			name: "windows host native",
			ctx:  context.Background(),
			desc: "windows",
			want: platform.TargetWindows,
		},
		{
			name:    "bad flag",
			ctx:     context.Background(),
			flag:    "fish",
			wantErr: platform.ErrUnexpectedValue,
		},
		{
			name:    "unknown host",
			ctx:     context.Background(),
			desc:    "darwin",
			wantErr: platform.ErrUnknownPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTarget(tt.ctx, tt.flag, platform.Static(tt.desc))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
