// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/matt-FFFFFF/shellmd"
	"github.com/matt-FFFFFF/shellmd/cmd"
	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	stubs := gostub.Stub(&shellmd.Version, "1.2.3").Stub(&shellmd.Commit, "abc123")
	defer stubs.Reset()

	assert.Equal(t, "1.2.3 (commit: abc123)", version())
}

func TestRootVersionFlag(t *testing.T) {
	stubs := gostub.Stub(&shellmd.Version, "1.2.3").Stub(&shellmd.Commit, "abc123")
	defer stubs.Reset()

	orig := ctxlog.LevelVar.Level()
	t.Cleanup(func() { ctxlog.LevelVar.Set(orig) })

	buf := &bytes.Buffer{}
	root := cmd.NewRootCmd()
	root.Writer = buf
	root.ErrWriter = &bytes.Buffer{}
	root.Version = version()

	require.NoError(t, root.Run(context.Background(), []string{"shellmd", "--version"}))
	assert.Contains(t, buf.String(), "1.2.3 (commit: abc123)")
}
