// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package platform

import (
	"context"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/spf13/afero"
)

const (
	goosWindows   = "windows"
	osReleasePath = "/proc/sys/kernel/osrelease"
)

// FsFactory returns the filesystem SystemProbe reads the kernel release from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// HostProbe supplies the platform-description string that Detect classifies.
type HostProbe interface {
	Describe(ctx context.Context) string
}

// HostProbeFunc adapts a plain function to the HostProbe interface.
type HostProbeFunc func(ctx context.Context) string

// Describe implements HostProbe.
func (f HostProbeFunc) Describe(ctx context.Context) string {
	return f(ctx)
}

// Static returns a HostProbe that always reports description.
func Static(description string) HostProbe {
	return HostProbeFunc(func(context.Context) string { return description })
}

var _ HostProbe = (*SystemProbe)(nil)

// SystemProbe describes the running process: the Go OS name, followed on Linux by the kernel
// release. WSL kernels carry "microsoft" in their release string.
type SystemProbe struct {
	// GOOS overrides runtime.GOOS when set.
	GOOS string
}

// Describe implements HostProbe. It is evaluated on every call.
func (p *SystemProbe) Describe(ctx context.Context) string {
	goos := runtime.GOOS
	if p != nil && p.GOOS != "" {
		goos = p.GOOS
	}

	if goos == goosWindows {
		return goos
	}

	release, err := afero.ReadFile(FsFactory(), osReleasePath)
	if err != nil {
		ctxlog.Debug(ctx, "kernel release unavailable", "path", osReleasePath, "error", err)
		return goos
	}

	return goos + "-" + strings.TrimSpace(string(release))
}

// Detect classifies the probe's description. Matching is case-insensitive and ordered:
// "windows", then "microsoft" (WSL), then "linux". Anything else is HostUnknown with an
// ErrUnknownPlatform error.
func Detect(ctx context.Context, probe HostProbe) (Host, error) {
	desc := probe.Describe(ctx)
	host := Classify(desc)

	ctxlog.Debug(ctx, "platform detected", "description", desc, "host", host.String())

	if host == HostUnknown {
		return HostUnknown, NewErrUnknownPlatform(desc)
	}

	return host, nil
}

// Classify maps a platform-description string to a Host without failing.
func Classify(description string) Host {
	d := strings.ToLower(description)

	switch {
	case strings.Contains(d, "windows"):
		return HostWindows
	case strings.Contains(d, "microsoft"):
		return HostWSL
	case strings.Contains(d, "linux"):
		return HostLinux
	}

	return HostUnknown
}
