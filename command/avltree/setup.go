// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// read the configuration and start logging
func setup(c *cli.Context) error {

	e := c.App.ErrWriter
	w := c.App.Writer
	verbose := c.GlobalBool("verbose")

	// to suppress reading config file if certain commands
	command := c.Args().Get(0)
	if "" == command || "version" == command || "help" == command {
		return nil
	}

	file := c.GlobalString("config")

	var config *configuration.Configuration
	if "" == file {
		dir, err := os.Getwd()
		if nil != err {
			return err
		}
		config = configuration.Default(dir)
	} else {
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}
		var err error
		config, err = configuration.GetConfiguration(file)
		if nil != err {
			return err
		}
	}

	if err := os.MkdirAll(config.Logging.Directory, 0770); nil != err {
		return err
	}
	if err := logger.Initialise(config.Logging); nil != err {
		return err
	}
	if err := fault.Initialise(); nil != err {
		return err
	}

	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", config)

	c.App.Metadata["config"] = &metadata{
		file:    file,
		config:  config,
		verbose: verbose,
		log:     log,
		e:       e,
		w:       w,
	}
	return nil
}

// flush the logs
func teardown(c *cli.Context) error {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok {
		return nil
	}
	m.log.Info("finished")
	fault.Finalise()
	logger.Finalise()
	return nil
}
