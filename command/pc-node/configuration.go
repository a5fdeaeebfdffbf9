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
	"github.com/bitmark-inc/prodcon/node"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "prodcon.leveldb"

	defaultListen = "127.0.0.1:8008"

	defaultRatePerSecond = 100
	defaultRateBurst     = 100

	defaultLogDirectory = "log"
	defaultLogFile      = "pc-node.log"
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

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Family        family.Family        `gluamapper:"family" json:"family"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Listen        []string             `gluamapper:"listen" json:"listen"`
	RateLimit     node.RateLimit       `gluamapper:"rate_limit" json:"rate_limit"`
	StatusExpiry  int                  `gluamapper:"status_expiry" json:"status_expiry"` // seconds
	QueueSize     int                  `gluamapper:"queue_size" json:"queue_size"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Family:        family.Default(),

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Listen: []string{defaultListen},

		RateLimit: node.RateLimit{
			PerSecond: defaultRatePerSecond,
			Burst:     defaultRateBurst,
		},

		StatusExpiry: int(node.DefaultStatusExpiry / time.Second),
		QueueSize:    node.DefaultQueueSize,

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

	if "" == options.Family.Name || "" == options.Family.Version {
		return nil, fault.InvalidError("family: name and version are required")
	}
	if 0 == len(options.Listen) {
		return nil, fault.InvalidError("listen: at least one address is required")
	}
	if err := checkRateLimit(options.RateLimit); nil != err {
		return nil, err
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = configuration.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names
	for _, f := range []string{options.Database.Name, options.Logging.File} {
		if err := configuration.PlainFile(f); nil != err {
			return nil, err
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	options.Database.Name = configuration.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	// done
	return options, nil
}

func (c *Configuration) statusExpiry() time.Duration {
	return time.Duration(c.StatusExpiry) * time.Second
}

func checkRateLimit(limit node.RateLimit) error {
	if limit.PerSecond <= 0 || limit.Burst <= 0 {
		return fault.InvalidError("rate_limit: per_second and burst must be positive")
	}
	return nil
}
