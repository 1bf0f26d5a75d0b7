// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/snapshot"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "no-balance", HasArg: getoptions.NO_ARGUMENT, Short: 'n'},
		{Long: "populate", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config-file=FILE] [--no-balance] [--populate=FILE]", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["no-balance"]) > 0 {
		theConfiguration.Balance.Enabled = false
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", theConfiguration)

	store, err := snapshot.New(theConfiguration.Snapshot.Store, theConfiguration.StoreLocation())
	if nil != err {
		log.Criticalf("open store: %s  error: %s", theConfiguration.StoreLocation(), err)
		exitwithstatus.Message("%s: open store: %s  error: %s", program, theConfiguration.StoreLocation(), err)
	}
	defer store.Close()

	tree := bst.NewWithOptions(theConfiguration.TreeOptions())

	for _, fileName := range options["populate"] {
		n, err := populateFromFile(tree, fileName)
		if nil != err {
			log.Criticalf("populate from: %q  error: %s", fileName, err)
			exitwithstatus.Message("%s: populate from: %q  error: %s", program, fileName, err)
		}
		log.Infof("populate from: %q  entries: %d", fileName, n)
		if len(options["verbose"]) > 0 {
			fmt.Printf("populated: %d entries from: %s\n", n, fileName)
		}
	}

	if terminal.IsTerminal(int(os.Stdin.Fd())) {
		err = interactive(program, newShell(tree, store, theConfiguration, nil))
	} else {
		err = batch(newShell(tree, store, theConfiguration, os.Stdout), os.Stdin)
	}
	if nil != err {
		log.Errorf("session error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
	log.Info("shutting down…")
}

func populateFromFile(tree *bst.Tree, fileName string) (int, error) {
	if !configuration.IsRegularFile(fileName) {
		return 0, fault.NewKeyError(fault.ErrNotFound, fileName)
	}
	f, err := os.Open(fileName)
	if nil != err {
		return 0, err
	}
	defer f.Close()
	return populate(tree, f)
}

// line editing session on the controlling terminal
func interactive(program string, s *shell) error {
	ttyFd, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if err != nil {
		return fmt.Errorf("tty open error: %s", err)
	}
	defer ttyFd.Close()

	oldState, err := terminal.MakeRaw(int(ttyFd.Fd()))
	if err != nil {
		return fmt.Errorf("tty raw mode error: %s", err)
	}
	defer terminal.Restore(int(ttyFd.Fd()), oldState)

	console := terminal.NewTerminal(ttyFd, program+"> ")
	s.w = console

	s.printTree()
	fmt.Fprint(console, helpText)

	for {
		line, err := console.ReadLine()
		if io.EOF == err {
			return nil
		} else if err != nil {
			return fmt.Errorf("terminal read error: %s", err)
		}
		quit, err := s.process(line)
		if nil != err {
			fmt.Fprintf(console, "error: %s\n", err)
		}
		if quit {
			return nil
		}
	}
}

// commands read from a pipe or file
func batch(s *shell, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		quit, err := s.process(scanner.Text())
		if nil != err {
			fmt.Fprintf(s.w, "error: %s\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}
