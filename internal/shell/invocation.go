// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"slices"

	"github.com/matt-FFFFFF/shellmd/internal/platform"
)

const (
	cmdExe        = "cmd.exe"
	powershellExe = "powershell.exe"
	wslExe        = "wsl"
	cmdSwitchWSL  = "/c"
)

// Invocation is the concrete command line for one host×target pair.
type Invocation struct {
	// Args is the argument vector. Args[0] is the program unless HostShell is set.
	Args []string
	// HostShell routes the whole vector through the Windows command interpreter.
	HostShell bool
}

// Dispatch builds the invocation that runs args in target from host.
//
//	host     CMD                 PowerShell             WSL / Linux
//	Windows  args via host shell powershell.exe + args  wsl + args (all via host shell)
//	WSL      cmd.exe /c + args   powershell.exe + args  args
//	Linux    invalid target      invalid target         args
//
// target must already be resolved; TargetWindows is rejected with ErrUnknownShell.
func Dispatch(host platform.Host, target platform.Target, args []string) (Invocation, error) {
	if !target.Valid() {
		return Invocation{}, fmt.Errorf("%w: %s", platform.ErrUnexpectedValue, target)
	}

	switch host {
	case platform.HostWindows:
		switch target {
		case platform.TargetCMD:
			return Invocation{Args: slices.Clone(args), HostShell: true}, nil
		case platform.TargetPowerShell:
			return Invocation{Args: prefixed(args, powershellExe), HostShell: true}, nil
		case platform.TargetWSL, platform.TargetLinux:
			return Invocation{Args: prefixed(args, wslExe), HostShell: true}, nil
		}

	case platform.HostWSL:
		switch target {
		case platform.TargetCMD:
			return Invocation{Args: prefixed(args, cmdExe, cmdSwitchWSL)}, nil
		case platform.TargetPowerShell:
			return Invocation{Args: prefixed(args, powershellExe)}, nil
		case platform.TargetWSL, platform.TargetLinux:
			return Invocation{Args: slices.Clone(args)}, nil
		}

	case platform.HostLinux:
		switch target {
		case platform.TargetWSL, platform.TargetLinux:
			return Invocation{Args: slices.Clone(args)}, nil
		default:
			return Invocation{}, platform.NewErrInvalidTarget(host, target)
		}

	case platform.HostUnknown:
		return Invocation{}, platform.NewErrUnknownPlatform(host.String())

	default:
		return Invocation{}, fmt.Errorf("%w: %s", platform.ErrUnexpectedValue, host)
	}

	// Only the unresolved Windows target reaches here.
	return Invocation{}, platform.NewErrUnknownShell(target.String())
}

func prefixed(args []string, prefix ...string) []string {
	return slices.Concat(prefix, args)
}
