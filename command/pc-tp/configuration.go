// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/prodcon/configuration"
	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/family"
	"github.com/bitmark-inc/prodcon/processor"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "pc-tp.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Validator     string               `gluamapper:"validator" json:"validator"`
	Timeout       int                  `gluamapper:"timeout" json:"timeout"` // seconds
	Family        family.Family        `gluamapper:"family" json:"family"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Validator:     processor.DefaultValidator,
		Timeout:       int(processor.DefaultTimeout / time.Second),
		Family:        family.Default(),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	dataDirectory, err := configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}
	options.DataDirectory = dataDirectory

	if "" == options.Validator {
		return nil, fault.InvalidError("validator: endpoint is required")
	}
	if options.Timeout <= 0 {
		return nil, fault.InvalidError("timeout: must be positive")
	}
	if "" == options.Family.Name || "" == options.Family.Version {
		return nil, fault.InvalidError("family: name and version are required")
	}

	if "" != options.PidFile {
		options.PidFile = configuration.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	if err := configuration.PlainFile(options.Logging.File); nil != err {
		return nil, err
	}

	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

func (c *Configuration) timeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
