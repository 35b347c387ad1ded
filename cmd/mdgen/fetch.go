// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mdgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
)

// ErrFetchInput is returned when an input location cannot be retrieved.
var ErrFetchInput = errors.New("failed to get input file")

// fetch retrieves url with go-getter into a temporary directory and returns the local path of the
// file. cleanup removes the directory and must be called once the file has been read.
func fetch(ctx context.Context, url string) (path string, cleanup func(), err error) {
	if url == "" {
		return "", nil, ErrFetchInput
	}

	tmpDir, err := os.MkdirTemp("", "shellmd-getter-*")
	if err != nil {
		return "", nil, errors.Join(ErrFetchInput, err)
	}

	rm := func() {
		os.RemoveAll(tmpDir) //nolint:errcheck
	}

	defer func() {
		if err != nil {
			rm()
		}
	}()

	wd, err := os.Getwd()
	if err != nil {
		return "", nil, errors.Join(ErrFetchInput, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string
	// Remote sources are fetched as a directory and the file picked out of it.
	// https://github.com/hashicorp/go-getter/issues/98
	if ok, derr := getter.Detect(req, &getter.FileGetter{}); !ok || derr != nil {
		if derr != nil {
			return "", nil, errors.Join(ErrFetchInput, derr)
		}

		var newURL string

		newURL, fileName = splitFileNameFromGetterURL(url)
		if newURL == "" || fileName == "" {
			return "", nil, fmt.Errorf("%w: invalid URL format: %s", ErrFetchInput, url)
		}

		req.Src = newURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return "", nil, errors.Join(ErrFetchInput, err)
	}

	path = filepath.Join(res.Dst, fileName)
	if _, err = os.Stat(path); err != nil {
		return "", nil, errors.Join(ErrFetchInput, err)
	}

	return path, rm, nil
}

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // scheme, host and path
)

// splitFileNameFromGetterURL splits a go-getter URL into the directory URL and the file name,
// keeping any query string on the directory URL.
func splitFileNameFromGetterURL(url string) (string, string) {
	var query string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]
	if i := strings.Index(last, goGetterRefSeparator); i >= 0 {
		query = last[i+1:]
		last = last[:i]
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	dir := filepath.Dir(last)

	if dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	newURL := strings.Join(parts, goGetterPathSeparator)
	if query != "" {
		newURL += goGetterRefSeparator + query
	}

	return newURL, fileName
}
