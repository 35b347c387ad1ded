// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the optional shellmd.yaml settings file.
//
// Lookup order is the working directory, then $HOME/.config/shellmd. A missing file is not an
// error. Every key may be overridden from the environment with the SHELLMD_ prefix, dots replaced
// by underscores, e.g. SHELLMD_SHELL_TARGET. Command-line flags override both.
package config
