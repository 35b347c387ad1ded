// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mdgen scans a source file for class and function declaration lines and writes a
// Markdown skeleton for each one, with placeholder descriptions to fill in by hand.
//
// Detection is a keyword-prefix match on each trimmed line followed by a first-parenthesis
// heuristic. Declarations spanning several lines, nested parentheses in default values and
// parameters containing literal parentheses or commas are not handled.
package mdgen
