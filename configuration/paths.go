// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - relative paths are taken from directory
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(directory, filePath)
}

// IsRegularFile - true for an existing file that is not a directory
func IsRegularFile(name string) bool {
	fileInfo, err := os.Stat(name)
	return nil == err && fileInfo.Mode().IsRegular()
}

// the directory must already exist
func checkDirectory(path string) error {
	fileInfo, err := os.Stat(path)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", path)
	}
	return nil
}

// snapshot and log names are joined to a configured directory
func checkPlainName(name string) error {
	switch filepath.Dir(name) {
	case "", ".":
		return nil
	default:
		return fmt.Errorf("Files: %q is not plain name", name)
	}
}
