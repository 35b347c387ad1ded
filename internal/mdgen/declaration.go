// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mdgen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrClassName is returned when a class line yields an empty name.
	ErrClassName = errors.New("cannot extract class name")
	// ErrFunctionName is returned when a function line has no name before its parameter list.
	ErrFunctionName = errors.New("cannot extract function name")
	// ErrParams is returned when a function line has no closed parenthesized group.
	ErrParams = errors.New("cannot extract params")
)

// Kind distinguishes class and function declarations.
type Kind int

const (
	// KindClass is a class declaration.
	KindClass Kind = iota
	// KindFunction is a function declaration.
	KindFunction
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Declaration is one parsed declaration line.
type Declaration struct {
	Kind Kind
	Name string
	// Params holds the raw comma-separated entries of the parenthesized group.
	// For a class these are its base classes.
	Params []string
	// Returns is empty when there is no return annotation.
	Returns string
	// Line is the trimmed source line with underscores escaped.
	Line string
}

// Escape makes underscores literal in Markdown.
func Escape(line string) string {
	return strings.ReplaceAll(line, "_", `\_`)
}

// ParseLine parses a single source line. It returns nil, nil when the line is not a declaration.
func ParseLine(syntax Syntax, line string) (*Declaration, error) {
	syntax = syntax.withDefaults()
	line = Escape(strings.TrimSpace(line))

	switch {
	case strings.HasPrefix(line, syntax.ClassKeyword):
		return parseClass(syntax, line)
	case strings.HasPrefix(line, syntax.FunctionKeyword):
		return parseFunction(syntax, line)
	}

	return nil, nil //nolint:nilnil
}

func parseClass(syntax Syntax, line string) (*Declaration, error) {
	rest := line[len(syntax.ClassKeyword):]

	name, ok := nameBeforeParen(rest)
	if !ok {
		// no base classes: drop the trailing terminator instead
		name = strings.TrimSpace(rest[:max(len(rest)-1, 0)])
	}

	if name == "" {
		return nil, fmt.Errorf("%w: %s", ErrClassName, line)
	}

	params, _ := parenGroup(line)

	return &Declaration{
		Kind:   KindClass,
		Name:   name,
		Params: params,
		Line:   line,
	}, nil
}

func parseFunction(syntax Syntax, line string) (*Declaration, error) {
	name, ok := nameBeforeParen(line[len(syntax.FunctionKeyword):])
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: %s", ErrFunctionName, line)
	}

	params, ok := parenGroup(line)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrParams, line)
	}

	return &Declaration{
		Kind:    KindFunction,
		Name:    name,
		Params:  params,
		Returns: returnType(syntax, line),
		Line:    line,
	}, nil
}

// nameBeforeParen returns the trimmed text before the first '('.
func nameBeforeParen(s string) (string, bool) {
	i := strings.IndexByte(s, '(')
	if i < 0 {
		return "", false
	}

	return strings.TrimSpace(s[:i]), true
}

// parenGroup splits the text between the first '(' and the last ')' on commas.
// An empty group yields nil, true.
func parenGroup(line string) ([]string, bool) {
	open := strings.IndexByte(line, '(')
	if open < 0 {
		return nil, false
	}

	closing := strings.LastIndexByte(line, ')')
	if closing < open {
		return nil, false
	}

	body := line[open+1 : closing]
	if body == "" {
		return nil, true
	}

	parts := strings.Split(body, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts, true
}

// returnType is the text after the arrow up to, not including, the line's last character.
func returnType(syntax Syntax, line string) string {
	i := strings.Index(line, syntax.ReturnArrow)
	if i < 0 {
		return ""
	}

	start := i + len(syntax.ReturnArrow)
	end := len(line) - 1

	if end <= start {
		return ""
	}

	return strings.TrimSpace(line[start:end])
}
