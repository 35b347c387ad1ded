// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mdgen

// Syntax holds the tokens the scanner looks for and the placeholder it writes.
type Syntax struct {
	ClassKeyword    string `mapstructure:"class_keyword" yaml:"class_keyword"`
	FunctionKeyword string `mapstructure:"function_keyword" yaml:"function_keyword"`
	ReturnArrow     string `mapstructure:"return_arrow" yaml:"return_arrow"`
	NoneSentinel    string `mapstructure:"none_sentinel" yaml:"none_sentinel"`
	Placeholder     string `mapstructure:"placeholder" yaml:"placeholder"`
}

// DefaultSyntax returns the Python-style declaration syntax.
func DefaultSyntax() Syntax {
	return Syntax{
		ClassKeyword:    "class ",
		FunctionKeyword: "def ",
		ReturnArrow:     "->",
		NoneSentinel:    "None",
		Placeholder:     "XXX",
	}
}

// withDefaults fills empty fields from DefaultSyntax.
func (s Syntax) withDefaults() Syntax {
	d := DefaultSyntax()

	if s.ClassKeyword == "" {
		s.ClassKeyword = d.ClassKeyword
	}

	if s.FunctionKeyword == "" {
		s.FunctionKeyword = d.FunctionKeyword
	}

	if s.ReturnArrow == "" {
		s.ReturnArrow = d.ReturnArrow
	}

	if s.NoneSentinel == "" {
		s.NoneSentinel = d.NoneSentinel
	}

	if s.Placeholder == "" {
		s.Placeholder = d.Placeholder
	}

	return s
}
