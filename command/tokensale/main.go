// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/ForceProtocol/TokenSaleContracts/configuration"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/messagebus"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	sender  common.Address
	log     *logger.L
	verbose bool
	events  <-chan messagebus.Message
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "tokensale"
	app.Usage = "deploy and operate a token sale"
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
			Value: "tokensale.conf",
			Usage: " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "sender, s",
			Value: "",
			Usage: " principal making the call `ADDRESS`",
		},
		cli.StringFlag{
			Name:  "at, t",
			Value: "",
			Usage: " run with the clock fixed at `RFC3339-TIME`",
		},
	}
	app.Commands = commands()

	app.Before = func(c *cli.Context) error {
		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "" == command || "help" == command || "h" == command || "version" == command {
			return nil
		}

		file := c.GlobalString("config")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}
		conf, err := configuration.Get(file, map[string]string{"command": command})
		if nil != err {
			return err
		}

		if err := logger.Initialise(conf.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		if err := os.MkdirAll(conf.Database.Directory, 0700); nil != err {
			return err
		}
		if err := storage.Initialise(conf.DatabaseFile(), storage.ReadWrite); nil != err {
			return err
		}

		var clock vm.Clock
		if at := c.GlobalString("at"); "" != at {
			t, err := configuration.ParseTime(at)
			if nil != err {
				return err
			}
			clock = vm.NewManualClock(t)
		}
		if err := vm.Initialise(clock); nil != err {
			return err
		}

		m := &metadata{
			file:    file,
			config:  conf,
			log:     logger.New(app.Name),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		if s := c.GlobalString("sender"); "" != s {
			m.sender, err = resolve(s)
			if nil != err {
				return err
			}
		}
		if verbose {
			m.events = messagebus.Bus.Events.Chan(0)
		}
		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if nil != m.events {
			printEvents(m)
			messagebus.Bus.Events.Release(m.events)
		}
		m.log.Flush()
		_ = vm.Finalise()
		storage.Finalise()
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
