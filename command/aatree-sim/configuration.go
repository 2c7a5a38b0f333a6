// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/aatree/configuration"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the directory
// holding the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "aatree-sim.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultSeed       = 1
	defaultKeyRange   = 200
	defaultInsertions = 200
	defaultDeletions  = 200
	defaultCycles     = 1
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	"main":            "info",
	logger.DefaultTag: "critical",
}

// SimulationType - parameters of one soak run
type SimulationType struct {
	Seed       int64 `gluamapper:"seed" json:"seed"`
	KeyRange   int   `gluamapper:"key_range" json:"key_range"`
	Insertions int   `gluamapper:"insertions" json:"insertions"`
	Deletions  int   `gluamapper:"deletions" json:"deletions"`
	Cycles     int   `gluamapper:"cycles" json:"cycles"`
}

// Configuration - configuration file data
type Configuration struct {
	Simulation SimulationType       `gluamapper:"simulation" json:"simulation"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Simulation: SimulationType{
			Seed:       defaultSeed,
			KeyRange:   defaultKeyRange,
			Insertions: defaultInsertions,
			Deletions:  defaultDeletions,
			Cycles:     defaultCycles,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if options.Simulation.KeyRange < 1 {
		return nil, fmt.Errorf("key_range: %d is out of range", options.Simulation.KeyRange)
	}
	if options.Simulation.Insertions < 1 {
		return nil, fmt.Errorf("insertions: %d is out of range", options.Simulation.Insertions)
	}
	if options.Simulation.Deletions < 0 {
		return nil, fmt.Errorf("deletions: %d is out of range", options.Simulation.Deletions)
	}
	if options.Simulation.Cycles < 1 {
		return nil, fmt.Errorf("cycles: %d is out of range", options.Simulation.Cycles)
	}

	// ensure the log directory is absolute
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, nil
}
