// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package platform

import (
	"fmt"
	"strings"
)

// Host is the operating environment the dispatcher itself runs on.
type Host int

const (
	// HostUnknown is the sentinel for an unrecognised platform description.
	HostUnknown Host = iota
	// HostWindows is a native Windows host.
	HostWindows
	// HostWSL is a Linux environment running on top of Windows (Windows Subsystem for Linux).
	HostWSL
	// HostLinux is a native Linux host.
	HostLinux
)

var hostNames = map[Host]string{
	HostUnknown: "Unknown",
	HostWindows: "Windows",
	HostWSL:     "WSL",
	HostLinux:   "Linux",
}

// String returns the display name of the host.
func (h Host) String() string {
	if s, ok := hostNames[h]; ok {
		return s
	}

	return fmt.Sprintf("Host(%d)", int(h))
}

// Valid reports whether h is a known, resolved host.
func (h Host) Valid() bool {
	return h == HostWindows || h == HostWSL || h == HostLinux
}

// Target is the shell dialect a command should be interpreted by.
type Target int

const (
	// TargetWindows means "whatever default shell the Windows host has configured".
	// It is resolved to TargetCMD or TargetPowerShell before dispatch.
	TargetWindows Target = iota
	// TargetCMD is the Windows command interpreter.
	TargetCMD
	// TargetPowerShell is Windows PowerShell.
	TargetPowerShell
	// TargetWSL is the Linux shell of the Windows Subsystem for Linux.
	TargetWSL
	// TargetLinux is a native Linux shell.
	TargetLinux
)

var targetNames = map[Target]string{
	TargetWindows:    "Windows",
	TargetCMD:        "CMD",
	TargetPowerShell: "PowerShell",
	TargetWSL:        "WSL",
	TargetLinux:      "Linux",
}

// String returns the display name of the target.
func (t Target) String() string {
	if s, ok := targetNames[t]; ok {
		return s
	}

	return fmt.Sprintf("Target(%d)", int(t))
}

// Valid reports whether t is a member of the enumeration.
func (t Target) Valid() bool {
	_, ok := targetNames[t]
	return ok
}

// IsWindowsShell reports whether output from t uses CRLF line endings.
func (t Target) IsWindowsShell() bool {
	return t == TargetCMD || t == TargetPowerShell
}

// Targets returns every target in declaration order.
func Targets() []Target {
	return []Target{TargetWindows, TargetCMD, TargetPowerShell, TargetWSL, TargetLinux}
}

// ParseTarget converts a case-insensitive name (e.g. "cmd", "powershell", "pwsh", "wsl") to a Target.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "win":
		return TargetWindows, nil
	case "cmd":
		return TargetCMD, nil
	case "powershell", "pwsh", "ps":
		return TargetPowerShell, nil
	case "wsl":
		return TargetWSL, nil
	case "linux":
		return TargetLinux, nil
	}

	return 0, fmt.Errorf("%w: target %q", ErrUnexpectedValue, s)
}

// HostTarget returns the target that means "the host's own shell".
// Windows maps to its configured default, WSL and Linux map to themselves.
func HostTarget(h Host) (Target, error) {
	switch h {
	case HostWindows:
		return TargetWindows, nil
	case HostWSL:
		return TargetWSL, nil
	case HostLinux:
		return TargetLinux, nil
	case HostUnknown:
		return 0, NewErrUnknownPlatform(h.String())
	}

	return 0, fmt.Errorf("%w: %s", ErrUnexpectedValue, h)
}
