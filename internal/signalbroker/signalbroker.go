// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker relays termination signals to the CLI.
//
// Child shells share the terminal, so they receive an interrupt directly and usually exit on their
// own. The first signal of a kind is therefore only logged. A second signal of the same kind
// cancels the root context, which kills any child still running.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
)

var termSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// New returns a channel notified of sigs, or of the termination signals when sigs is empty.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signal broker created", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop ends signal delivery to ch.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}
