// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mdgen

import (
	"bufio"
	"io"
)

const returnsLabel = "__returns:__ "

// Render writes the stub for decl using DefaultSyntax.
func Render(w io.Writer, decl *Declaration) error {
	return DefaultSyntax().Render(w, decl)
}

// Render writes the Markdown stub for decl.
func (s Syntax) Render(w io.Writer, decl *Declaration) error {
	s = s.withDefaults()
	bw := bufio.NewWriter(w)

	heading := decl.Name
	tableTitle := "extends"

	if decl.Kind == KindFunction {
		heading += "()"
		tableTitle = "param"
	}

	bw.WriteString("## " + heading + "\n")
	bw.WriteString("_" + decl.Line + "_\n")
	bw.WriteString("\n" + s.Placeholder + "\n\n")

	if len(decl.Params) > 0 {
		bw.WriteString("|" + tableTitle + "|description|\n")
		bw.WriteString("|---|---|\n")

		for _, p := range decl.Params {
			bw.WriteString("|" + p + "|" + s.Placeholder + "|\n")
		}

		bw.WriteString("\n")
	}

	if decl.Kind == KindFunction {
		bw.WriteString(returnsLabel)

		if decl.Returns == "" || decl.Returns == s.NoneSentinel {
			bw.WriteString("_" + s.NoneSentinel + "_\n")
		} else {
			bw.WriteString("_" + decl.Returns + "_:&nbsp; " + s.Placeholder + "\n")
		}
	}

	return bw.Flush()
}
