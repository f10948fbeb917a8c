// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/legacytx/configuration"
	"github.com/bitmark-inc/legacytx/transactionrecord"
	"github.com/bitmark-inc/legacytx/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "legacytx-cli.log"
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

// the file's levels are merged into this map
func (m LoglevelMap) copy() LoglevelMap {
	c := make(LoglevelMap, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// TransactionType - values used for newly built transactions
type TransactionType struct {
	Version  int32  `gluamapper:"version" json:"version"`
	LockTime uint32 `gluamapper:"lock_time" json:"lock_time"`
	Sequence uint32 `gluamapper:"sequence" json:"sequence"`
}

// WalletType - what the balance command displays
type WalletType struct {
	Address string `gluamapper:"address" json:"address"`
	Balance uint64 `gluamapper:"balance" json:"balance"`
}

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Transaction   TransactionType      `gluamapper:"transaction" json:"transaction"`
	Wallet        WalletType           `gluamapper:"wallet" json:"wallet"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// a missing file is not an error, the defaults are used with the
// directory of the file name as the data directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Transaction: TransactionType{
			Version:  transactionrecord.DefaultVersion,
			LockTime: transactionrecord.DefaultLockTime,
			Sequence: transactionrecord.DefaultSequence,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.copy(),
		},
	}

	if util.EnsureFileExists(configurationFileName) {
		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	} else if err := os.MkdirAll(dataDirectory, 0700); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator
	mustNotBePaths := []*string{
		&options.Logging.File,
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f) {
		case "", ".":
		default:
			return nil, errors.Errorf("Files: %q is not plain name", *f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
