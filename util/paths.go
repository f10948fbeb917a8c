// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a configured path against the data directory
//
// used by legacytx-cli for the log directory, relative names are
// taken from the directory holding the Lua configuration file
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if the name can be stat'ed
//
// a missing default configuration is not an error, so callers test
// for the file before parsing it
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
