// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/legacytx/fault"
	"github.com/bitmark-inc/legacytx/util"
)

type metadata struct {
	file    string
	config  *Configuration
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const logChannel = "cli"

func main() {

	app := cli.NewApp()
	app.Name = "legacytx-cli"
	app.Usage = "build, encode and decode legacy transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE` [$XDG_CONFIG_HOME/legacytx-cli/legacytx-cli.conf]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "send",
			Usage:     "prepare an unsigned transaction paying an address",
			ArgsUsage: "AMOUNT ADDRESS\n   AMOUNT in satoshis, ADDRESS is not checked",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " output as JSON",
				},
			},
			Action: runSend,
		},
		{
			Name:   "balance",
			Usage:  "display the configured wallet balance",
			Action: runBalance,
		},
		{
			Name:      "encode",
			Usage:     "build a transaction and print its packed hex",
			ArgsUsage: "\n   (default values from the configuration)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "tx-version, t",
					Value: 0,
					Usage: " transaction `VERSION`",
				},
				cli.Uint64Flag{
					Name:  "lock-time, l",
					Value: 0,
					Usage: " lock time `BLOCK_OR_TIME`",
				},
			},
			Action: runEncode,
		},
		{
			Name:      "decode",
			Usage:     "decode one or more packed transactions",
			ArgsUsage: "HEX [HEX...]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " output as JSON",
				},
			},
			Action: runDecode,
		},
		{
			Name:   "demo",
			Usage:  "run through points, builder, parsing, packing and errors",
			Action: runDemo,
		},
		{
			Name:  "version",
			Usage: "display legacytx-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file, err := configurationFileName(app.Name, c.GlobalString("config"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return errors.Wrapf(err, "configuration: %s", file)
		}

		if err := logger.Initialise(configuration.Logging); nil != err {
			return errors.Wrap(err, "logger")
		}

		log := logger.New(logChannel)
		if nil == log {
			logger.Finalise()
			return fault.ErrInvalidLoggerChannel
		}
		log.Infof("command: %s  configuration: %s", command, file)

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  configuration,
			verbose: verbose,
			log:     log,
			e:       e,
			w:       w,
		}

		return nil
	}

	// stop logging
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// an explicit file must exist, otherwise fall back to the per user
// configuration directory
func configurationFileName(name string, file string) (string, error) {
	if "" != file {
		if !util.EnsureFileExists(file) {
			return "", errors.Wrap(fault.ErrNotFoundConfigFile, file)
		}
		return file, nil
	}

	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		dir, err := os.UserConfigDir()
		if nil != err {
			return "", err
		}
		p = dir
	}
	return filepath.Join(p, name, name+".conf"), nil
}
