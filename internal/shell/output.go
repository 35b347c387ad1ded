// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/shellmd/internal/platform"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const crlf = "\r\n"

var (
	// ErrUnknownEncoding is returned when Options.Encoding names an unsupported encoding.
	ErrUnknownEncoding = errors.New("unknown output encoding")
	// ErrDecodeOutput is returned when captured output cannot be decoded.
	ErrDecodeOutput = errors.New("failed to decode output")
)

// Decode converts captured bytes to text. An empty name means UTF-8, switching to UTF-16 when a
// UTF-16 byte order mark is present; any leading BOM is dropped.
func Decode(raw []byte, name string) (string, error) {
	var t transform.Transformer

	if name == "" {
		t = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	} else {
		enc, err := lookupEncoding(name)
		if err != nil {
			return "", err
		}

		t = unicode.BOMOverride(enc.NewDecoder())
	}

	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return "", errors.Join(ErrDecodeOutput, err)
	}

	return string(out), nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}

	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// Format applies the strip, carriage-removal and tab options to decoded output from target.
func Format(text string, target platform.Target, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}

	winShell := target.IsWindowsShell()

	if opts.Strip {
		if winShell {
			// CMD and PowerShell pad output with CRLF pairs.
			text = winStrip(text)
		} else {
			text = strings.TrimSpace(text)
		}
	}

	if opts.RemoveCarriage && winShell {
		text = strings.ReplaceAll(text, "\r", "")
	}

	if opts.Tab && text != "" {
		if !strings.HasPrefix(text, "\t") {
			text = "\t" + text
		}

		text = strings.ReplaceAll(text, "\n", "\n\t")
	}

	return text
}

// winStrip removes every leading and trailing CRLF pair, then surrounding whitespace.
func winStrip(text string) string {
	for strings.HasSuffix(text, crlf) {
		text = strings.TrimSuffix(text, crlf)
	}

	for strings.HasPrefix(text, crlf) {
		text = strings.TrimPrefix(text, crlf)
	}

	return strings.TrimSpace(text)
}
