// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget is returned when a target shell cannot be reached from the host platform.
	ErrInvalidTarget = errors.New("invalid target for platform")
	// ErrUnexpectedValue is returned when a Host or Target holds a value outside its enumeration.
	ErrUnexpectedValue = errors.New("unexpected value")
	// ErrUnknownPlatform is returned when the host platform could not be resolved.
	ErrUnknownPlatform = errors.New("could not resolve platform")
	// ErrUnknownShell is returned when the configured default shell is not CMD or PowerShell.
	ErrUnknownShell = errors.New("could not resolve shell")
)

// NewErrInvalidTarget returns an ErrInvalidTarget describing the host/target pair.
func NewErrInvalidTarget(host Host, target Target) error {
	return fmt.Errorf("%w: %s cannot target %s", ErrInvalidTarget, host, target)
}

// NewErrUnknownPlatform returns an ErrUnknownPlatform carrying the description that failed to match.
func NewErrUnknownPlatform(description string) error {
	return fmt.Errorf("%w: %q", ErrUnknownPlatform, description)
}

// NewErrUnknownShell returns an ErrUnknownShell carrying the configured shell path.
func NewErrUnknownShell(shell string) error {
	return fmt.Errorf("%w: %q", ErrUnknownShell, shell)
}
