// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a log/slog logger in a context.Context.
//
// The level comes from the SHELLMD_LOG_LEVEL environment variable (DEBUG, INFO, WARN, ERROR;
// anything else is WARN) and can be changed at runtime with SetLevel.
// The default handler is a pretty console handler; JSONLogger is available for machine output.
package ctxlog
