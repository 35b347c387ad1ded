// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		str   string
		codes []Code
		want  string
	}{
		{name: "single code", str: "x", codes: []Code{FgRed}, want: "\033[31mx\033[0m"},
		{name: "multiple codes", str: "x", codes: []Code{Bold, FgGreen}, want: "\033[1;32mx\033[0m"},
		{name: "hi intensity", str: "x", codes: []Code{FgHiWhite}, want: "\033[97mx\033[0m"},
		{name: "no codes", str: "x", want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.str, tt.codes...))
		})
	}
}

func TestColorize(t *testing.T) {
	orig := enabled
	defer func() { enabled = orig }()

	enabled = false
	assert.Equal(t, "plain", Colorize("plain", FgRed))
	assert.False(t, Enabled())

	enabled = true
	assert.Equal(t, "\033[36mcyan\033[0m", Colorize("cyan", FgCyan))
}

func TestIsColorEnabled(t *testing.T) {
	t.Setenv(NoColor, "1")
	t.Setenv(ForceColor, "1")
	assert.False(t, isColorEnabled(), "NO_COLOR wins over FORCE_COLOR")

	t.Setenv(NoColor, "")
	assert.True(t, isColorEnabled())
}
