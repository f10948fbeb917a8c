// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	logFile  = "txdump.log"
	logCount = 10
	logSize  = 1024 * 1024
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "log-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] [--verbose] [--json] [--log-directory=DIR] [--file=FILE|-] [HEX...]", program)
	}

	verbose := len(options["verbose"]) > 0

	logDirectory := os.TempDir()
	if len(options["log-directory"]) > 0 {
		logDirectory = options["log-directory"][0]
	}

	// start logging
	if err = logger.Initialise(loggerConfiguration(logDirectory, verbose)); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("txdump")
	log.Infof("version: %s", version)

	records := make([]string, 0, len(arguments))
	for _, name := range options["file"] {
		lines, err := readRecordFile(name)
		if nil != err {
			log.Errorf("file: %q  error: %s", name, err)
			exitwithstatus.Message("%s: file: %q  error: %s", program, name, err)
		}
		records = append(records, lines...)
	}
	records = append(records, arguments...)

	if 0 == len(records) {
		exitwithstatus.Message("%s: no records, give HEX arguments or --file", program)
	}

	err = dumpRecords(os.Stdout, records, len(options["json"]) > 0)
	if nil != err {
		log.Errorf("dump error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
	log.Infof("dumped: %d records", len(records))
}

// console output only when verbose
func loggerConfiguration(directory string, verbose bool) logger.Configuration {
	level := "critical"
	if verbose {
		level = "info"
	}
	return logger.Configuration{
		Directory: directory,
		File:      logFile,
		Size:      logSize,
		Count:     logCount,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
}
