// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
)

// basic defaults (the log directory is relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultCount = 10
	defaultSeed  = 1
)

// Configuration - everything the driver reads from a Lua file
type Configuration struct {
	Display bool                 `gluamapper:"display" json:"display"`
	Check   bool                 `gluamapper:"check" json:"check"`
	Count   int                  `gluamapper:"count" json:"count"`
	Seed    uint64               `gluamapper:"seed" json:"seed"`
	Insert  []int                `gluamapper:"insert" json:"insert"`
	Delete  []int                `gluamapper:"delete" json:"delete"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given, logs go to
// directory
func Default(directory string) *Configuration {
	return &Configuration{
		Display: false,
		Check:   false,
		Count:   defaultCount,
		Seed:    defaultSeed,
		Logging: logger.Configuration{
			Directory: filepath.Join(directory, defaultLogDirectory),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// GetConfiguration - read, decode and fix up a configuration file
func GetConfiguration(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	directory, _ := filepath.Split(fileName)

	options := Default(directory)
	if err := ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	// a relative log directory is relative to the configuration file
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(directory, options.Logging.Directory)
	}
	return options, nil
}
