// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/fault"
)

// FileStore - one snapshot file per name in a directory
type FileStore struct {
	directory string
	log       *logger.L
}

// NewFileStore - create the directory if necessary
func NewFileStore(directory string) (*FileStore, error) {
	if err := os.MkdirAll(directory, 0700); nil != err {
		return nil, err
	}
	return &FileStore{
		directory: directory,
		log:       logger.New("snapshot"),
	}, nil
}

// relative names are in the store directory
func (s *FileStore) path(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.directory, name)
}

// Save - write a snapshot, replacing any previous one of the same name
func (s *FileStore) Save(name string, data []interface{}) error {
	filename := s.path(name)
	s.log.Infof("saving: %s", filename)

	temporary := filename + ".new"
	f, err := os.OpenFile(temporary, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if nil != err {
		return err
	}

	err = Encode(f, data)
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		s.log.Errorf("save: %s  error: %s", filename, err)
		os.Remove(temporary)
		return err
	}

	if err := os.Rename(temporary, filename); nil != err {
		return err
	}
	s.log.Info("save completed")
	return nil
}

// Load - read a snapshot
func (s *FileStore) Load(name string) ([]interface{}, error) {
	filename := s.path(name)
	s.log.Infof("restore from file: %s", filename)

	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		return nil, fault.NewKeyError(fault.ErrSnapshotNotFound, name)
	} else if nil != err {
		return nil, err
	}
	defer f.Close()

	data, err := Decode(f)
	if nil != err {
		s.log.Errorf("restore: %s  error: %s", filename, err)
		return nil, err
	}
	s.log.Info("restore completed")
	return data, nil
}

// List - names of the snapshots in the directory
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.directory)
	if nil != err {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && ".new" != filepath.Ext(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Close - nothing is held open
func (s *FileStore) Close() error {
	return nil
}
