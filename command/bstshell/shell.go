// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/snapshot"
)

const helpText = `commands:
  i value[,key]           insert
  d key                   delete
  f key                   find
  u key[,value[,new-key]] update
  s [name]                save snapshot
  r [name]                restore snapshot
  a                       available snapshots
  p                       print tree
  l [-r]                  list keys
  c                       check tree
  h                       this help
  q                       quit
`

// shell - state for one interactive session
type shell struct {
	tree         *bst.Tree
	store        snapshot.Store
	print        configuration.PrintType
	snapshotName string
	w            io.Writer
	log          *logger.L
}

func newShell(tree *bst.Tree, store snapshot.Store, config *configuration.Configuration, w io.Writer) *shell {
	return &shell{
		tree:         tree,
		store:        store,
		print:        config.Print,
		snapshotName: config.Snapshot.Name,
		w:            w,
		log:          logger.New("shell"),
	}
}

// process - run one command line
//
// returns true if the session should end; command errors are
// reported to the caller and the session can continue
func (s *shell) process(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if "" == line {
		return false, nil
	}

	command := line[:1]
	arguments := strings.TrimSpace(line[1:])
	s.log.Debugf("command: %q  arguments: %q", command, arguments)

	changed := false
	var err error

	switch command {
	case "i":
		err = s.insert(arguments)
		changed = nil == err

	case "d":
		err = s.delete(arguments)
		changed = nil == err

	case "f":
		err = s.find(arguments)

	case "u":
		err = s.update(arguments)
		changed = nil == err

	case "s":
		err = s.save(arguments)

	case "r":
		err = s.restore(arguments)
		changed = nil == err

	case "a":
		err = s.available()

	case "p":
		s.printTree()

	case "l":
		s.list("-r" == arguments)

	case "c":
		s.check()

	case "h", "?":
		fmt.Fprint(s.w, helpText)

	case "q":
		return true, nil

	default:
		err = fault.NewKeyError(fault.ErrInvalidCommand, command)
	}

	if nil != err {
		s.log.Errorf("command: %q  error: %s", line, err)
		return false, err
	}
	if changed {
		s.printTree()
	}
	return false, nil
}

// split comma separated arguments, trimming spaces
func splitArguments(arguments string, n int) []string {
	fields := strings.SplitN(arguments, ",", n)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func (s *shell) insert(arguments string) error {
	return insertEntry(s.tree, arguments)
}

// "value" is stored under its own key, "value,key" under key
func insertEntry(tree *bst.Tree, arguments string) error {
	fields := splitArguments(arguments, 2)
	if "" == fields[0] {
		return fault.NewKeyError(fault.ErrInvalidCommand, "insert requires a value")
	}
	if 1 == len(fields) || "" == fields[1] {
		return tree.Insert(bst.String(fields[0]), nil)
	}
	return tree.Insert(fields[0], bst.String(fields[1]))
}

func (s *shell) delete(key string) error {
	value, k, err := s.tree.Pop(bst.String(key))
	if nil != err {
		return err
	}
	s.log.Infof("deleted: %v → %v", k, value)
	fmt.Fprintf(s.w, "deleted: %v\n", k)
	return nil
}

func (s *shell) find(key string) error {
	start := time.Now()
	value, err := s.tree.Find(bst.String(key))
	duration := time.Since(start)
	if nil != err {
		return err
	}
	fmt.Fprintf(s.w, "%v\nduration: %s\n", value, duration)
	return nil
}

func (s *shell) update(arguments string) error {
	fields := splitArguments(arguments, 3)
	if "" == fields[0] {
		return fault.NewKeyError(fault.ErrInvalidCommand, "update requires a key")
	}

	var value interface{}
	var newKey bst.Item
	if len(fields) > 1 && "" != fields[1] {
		value = fields[1]
	}
	if len(fields) > 2 && "" != fields[2] {
		newKey = bst.String(fields[2])
	}
	return s.tree.Update(bst.String(fields[0]), value, newKey)
}

func (s *shell) save(name string) error {
	if "" == name {
		name = s.snapshotName
	}
	if err := s.store.Save(name, s.tree.Export()); nil != err {
		return err
	}
	fmt.Fprintf(s.w, "saved: %s  nodes: %d\n", name, s.tree.Count())
	return nil
}

func (s *shell) restore(name string) error {
	if "" == name {
		name = s.snapshotName
	}
	data, err := s.store.Load(name)
	if nil != err {
		return err
	}
	if err := s.tree.Import(data); nil != err {
		return err
	}
	fmt.Fprintf(s.w, "restored: %s  nodes: %d\n", name, s.tree.Count())
	return nil
}

func (s *shell) available() error {
	names, err := s.store.List()
	if nil != err {
		return err
	}
	for _, name := range names {
		fmt.Fprintf(s.w, "%s\n", name)
	}
	return nil
}

func (s *shell) printTree() {
	fmt.Fprint(s.w, s.tree.PrettyPrint(s.print.MaxDepth, s.print.Frame, s.print.ShowValue))
}

func (s *shell) list(reverse bool) {
	for it := s.tree.Keys(reverse); it.Next(); {
		fmt.Fprintf(s.w, "%v\n", it.Key())
	}
}

func (s *shell) check() {
	result := "ok"
	if err := s.tree.Check(); nil != err {
		result = err.Error()
	}
	fmt.Fprintf(s.w, "count: %d  height: %d  check: %s\n", s.tree.Count(), s.tree.Height(), result)
}

// populate - insert "value,key" lines into a tree
//
// blank lines and lines starting with '#' are skipped
func populate(tree *bst.Tree, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	for lineNumber := 1; scanner.Scan(); lineNumber += 1 {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || '#' == line[0] {
			continue
		}
		if err := insertEntry(tree, line); nil != err {
			return n, fmt.Errorf("line: %d  error: %s", lineNumber, err)
		}
		n += 1
	}
	return n, scanner.Err()
}
