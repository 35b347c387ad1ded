// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

// Options controls how captured output is post-processed.
type Options struct {
	Strip          bool   // Trim surrounding whitespace (and CRLF padding for CMD/PowerShell).
	RemoveCarriage bool   // Remove every '\r' from CMD/PowerShell output.
	Tab            bool   // Indent every output line with a tab.
	Verbose        bool   // Log the source host and resolved target at info level.
	Encoding       string // Output encoding name, empty for UTF-8 with BOM detection.
}

// DefaultOptions returns the options used when nil is passed to Run.
func DefaultOptions() *Options {
	return &Options{
		Strip:          true,
		RemoveCarriage: true,
		Tab:            false,
		Verbose:        false,
	}
}
