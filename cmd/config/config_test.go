// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/matt-FFFFFF/shellmd/cmd/cmdstate"
	internalconfig "github.com/matt-FFFFFF/shellmd/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runConfig(ctx context.Context) (string, error) {
	buf := &bytes.Buffer{}
	root := &cli.Command{
		Name:     "shellmd",
		Writer:   buf,
		Commands: []*cli.Command{NewCommand()},
	}

	err := root.Run(ctx, []string{"shellmd", "config"})

	return buf.String(), err
}

func TestConfigDefaults(t *testing.T) {
	out, err := runConfig(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, out, "#")
	assert.Contains(t, out, "log_level: warn")
	assert.Contains(t, out, "strip: true")
	assert.Contains(t, out, "placeholder: XXX")
}

func TestConfigFromContext(t *testing.T) {
	cfg := internalconfig.Default()
	cfg.Shell.Target = "wsl"
	cfg.Mdgen.Placeholder = "TBD"

	out, err := runConfig(cmdstate.WithConfig(context.Background(), cfg))
	require.NoError(t, err)

	assert.Contains(t, out, "target: wsl")
	assert.Contains(t, out, "placeholder: TBD")
}
