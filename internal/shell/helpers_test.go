// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/shellmd/internal/platform"
)

const (
	descWindows = "Windows-10-10.0.19045-SP0"
	descWSL     = "linux-5.15.153.1-microsoft-standard-WSL2"
	descLinux   = "linux-6.8.0-40-generic"
)

// fakeRunner records invocations and answers with canned stdout keyed by the joined argument vector.
type fakeRunner struct {
	calls   []Invocation
	outputs map[string]string
	err     error
}

func (f *fakeRunner) Run(_ context.Context, inv Invocation) ([]byte, error) {
	f.calls = append(f.calls, inv)
	if f.err != nil {
		return nil, f.err
	}

	return []byte(f.outputs[strings.Join(inv.Args, " ")]), nil
}

func newDispatcher(desc string, outputs map[string]string) (*Dispatcher, *fakeRunner) {
	r := &fakeRunner{outputs: outputs}

	return &Dispatcher{Probe: platform.Static(desc), Runner: r}, r
}

// failProbe fails the test if the host is sampled.
func failProbe(t *testing.T) platform.HostProbe {
	t.Helper()

	return platform.HostProbeFunc(func(context.Context) string {
		t.Error("host probe should not be called")
		return descLinux
	})
}
