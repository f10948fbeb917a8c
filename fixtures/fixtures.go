// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for tests that need a running logger
//
// the legacytx-cli demo writes through a logger channel, so its test
// must initialise a logger first; everything goes to a scratch "testing" directory below the
// package under test and is removed afterwards
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	dir = "testing" // scratch directory, removed on teardown

	// LogCategory - channel name for loggers created in tests
	LogCategory = "testing"
)

// SetupTestLogger - start a file logger in a scratch directory
//
// only critical messages are recorded so a demo run
// leaves a near empty log; pair every call with TeardownTestLogger
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop the logger and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
