// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/snapshot"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultSnapshotDirectory = "snapshots"
	defaultSnapshotName      = "saved_tree.bst"
	defaultDatabase          = "snapshots.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "bstree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// BalanceType - tree construction options
type BalanceType struct {
	Enabled       bool `gluamapper:"enabled" json:"enabled"`
	Tolerance     int  `gluamapper:"tolerance" json:"tolerance"`
	RootTolerance int  `gluamapper:"root_tolerance" json:"root_tolerance"`
}

// SnapshotType - where saved trees are kept
type SnapshotType struct {
	Store     string `gluamapper:"store" json:"store"`
	Directory string `gluamapper:"directory" json:"directory"`
	Database  string `gluamapper:"database" json:"database"`
	Name      string `gluamapper:"name" json:"name"`
}

// PrintType - tree rendering options
type PrintType struct {
	MaxDepth  int  `gluamapper:"max_depth" json:"max_depth"`
	Frame     bool `gluamapper:"frame" json:"frame"`
	ShowValue bool `gluamapper:"show_value" json:"show_value"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Balance       BalanceType          `gluamapper:"balance" json:"balance"`
	Snapshot      SnapshotType         `gluamapper:"snapshot" json:"snapshot"`
	Print         PrintType            `gluamapper:"print" json:"print"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Defaults - configuration used when no file is given
func Defaults() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,

		Balance: BalanceType{
			Enabled:       true,
			Tolerance:     bst.DefaultTolerance,
			RootTolerance: bst.DefaultRootTolerance,
		},

		Snapshot: SnapshotType{
			Store:     snapshot.FileStoreType,
			Directory: defaultSnapshotDirectory,
			Database:  defaultDatabase,
			Name:      defaultSnapshotName,
		},

		Print: PrintType{
			MaxDepth:  bst.DefaultMaxDepth,
			Frame:     true,
			ShowValue: false,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// GetConfiguration - read, decode and verify the configuration
//
// an empty file name gives the defaults relative to the current
// directory
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	options := Defaults()
	dataDirectory := ""

	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		dataDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(fileName)

		if err := ParseConfigurationFile(fileName, options); err != nil {
			return nil, err
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = EnsureAbsolute(dataDirectory, options.DataDirectory)
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := checkDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	options.Snapshot.Store = strings.ToLower(options.Snapshot.Store)
	switch options.Snapshot.Store {
	case snapshot.FileStoreType, snapshot.LevelDBStoreType:
	default:
		return nil, fault.NewKeyError(fault.ErrInvalidStoreType, options.Snapshot.Store)
	}

	if options.Balance.Tolerance < 1 {
		options.Balance.Tolerance = bst.DefaultTolerance
	}
	if options.Balance.RootTolerance < options.Balance.Tolerance {
		options.Balance.RootTolerance = bst.DefaultRootTolerance
	}
	if options.Print.MaxDepth < 1 {
		options.Print.MaxDepth = bst.DefaultMaxDepth
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Snapshot.Directory,
		&options.Snapshot.Database,
	}
	for _, f := range mustBeAbsolute {
		*f = EnsureAbsolute(options.DataDirectory, *f)
	}

	for _, name := range []string{options.Logging.File, options.Snapshot.Name} {
		if err := checkPlainName(name); nil != err {
			return nil, err
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// TreeOptions - construction options for a tree
func (c *Configuration) TreeOptions() bst.Options {
	return bst.Options{
		Balance:       c.Balance.Enabled,
		Tolerance:     c.Balance.Tolerance,
		RootTolerance: c.Balance.RootTolerance,
	}
}

// StoreLocation - directory or database path for the configured store
func (c *Configuration) StoreLocation() string {
	if snapshot.LevelDBStoreType == c.Snapshot.Store {
		return c.Snapshot.Database
	}
	return c.Snapshot.Directory
}
