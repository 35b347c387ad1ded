// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
)

// Watch calls cancel on the second signal of any one kind.
// It returns after cancelling, when ctx is done or when sigCh is closed.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Warn(ctx, "second signal received, cancelling", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Info(ctx, "signal received, waiting for the running command", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
