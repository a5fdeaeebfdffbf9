// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/prodcon/fault"
)

// EnsureAbsolute - prefix relative paths with a directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// DataDirectory - resolve the data directory setting of a
// configuration file
//
// "." means the directory holding the configuration file; the
// directory must already exist
func DataDirectory(configurationFileName string, dataDirectory string) (string, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return "", err
	}

	if "" == dataDirectory || "~" == dataDirectory {
		return "", fault.InvalidError("path: " + dataDirectory + " is not a valid directory")
	} else if "." == dataDirectory {
		dataDirectory, _ = filepath.Split(configurationFileName)
	}
	dataDirectory = filepath.Clean(dataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(dataDirectory); nil != err {
		return "", err
	} else if !fileInfo.IsDir() {
		return "", fault.InvalidError("path: " + dataDirectory + " is not a directory")
	}
	return dataDirectory, nil
}

// PlainFile - fail if a name contains a directory part
func PlainFile(name string) error {
	switch filepath.Dir(name) {
	case "", ".":
		return nil
	default:
		return fault.InvalidError("file: " + name + " is not plain name")
	}
}
