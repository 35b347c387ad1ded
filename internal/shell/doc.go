// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell runs a command in a chosen shell dialect (CMD, PowerShell, WSL or a Linux shell)
// from whichever host the process is on, and normalises what comes back.
//
// A call goes through five steps: detect the host, resolve the target (the Windows target becomes
// the host's configured default shell), build the invocation from the host×target dispatch table,
// run it capturing stdout, then decode, strip and reformat the text.
//
// Every call blocks until the child exits. Stderr is not captured.
//
// The Env family reads an environment variable back through the same dispatch path. Variable
// names are restricted to letters and underscores so they can be spliced into an echo probe
// safely.
package shell
