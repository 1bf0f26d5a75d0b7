// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/bstree/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// prefix of snapshot keys
const snapshotPrefix = 'S'

// LevelDBStore - snapshots as records in a LevelDB database
type LevelDBStore struct {
	db  *leveldb.DB
	log *logger.L
}

// NewLevelDBStore - open or create the database
//
// a new database is tagged with the current version, a database
// from a later version is rejected
func NewLevelDBStore(database string, readOnly bool) (*LevelDBStore, error) {
	log := logger.New("snapshot")

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return nil, err
	}

	if version > currentDBVersion {
		db.Close()
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.NewKeyError(fault.ErrIncompatibleDatabase, fmt.Sprintf("%d > %d", version, currentDBVersion))
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	log.Infof("opened database: %s  version: %d", database, version)
	return &LevelDBStore{
		db:  db,
		log: log,
	}, nil
}

// returns the database handle and its version number, zero for a
// database without a version record
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fault.NewKeyError(fault.ErrIncompatibleDatabase, fmt.Sprintf("version length: %d", len(versionValue)))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

func snapshotKey(name string) []byte {
	return append([]byte{snapshotPrefix}, name...)
}

// Save - store a snapshot, replacing any previous one of the same name
func (s *LevelDBStore) Save(name string, data []interface{}) error {
	packed, err := Pack(data)
	if nil != err {
		return err
	}
	s.log.Infof("save: %q  bytes: %d", name, len(packed))
	return s.db.Put(snapshotKey(name), packed, &ldb_opt.WriteOptions{Sync: true})
}

// Load - read a snapshot
func (s *LevelDBStore) Load(name string) ([]interface{}, error) {
	packed, err := s.db.Get(snapshotKey(name), nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.NewKeyError(fault.ErrSnapshotNotFound, name)
	} else if nil != err {
		return nil, err
	}
	s.log.Infof("load: %q  bytes: %d", name, len(packed))
	return Unpack(packed)
}

// List - names of all stored snapshots in order
func (s *LevelDBStore) List() ([]string, error) {
	maxRange := ldb_util.Range{
		Start: []byte{snapshotPrefix},     // Start of key range, included in the range
		Limit: []byte{snapshotPrefix + 1}, // Limit of key range, excluded from the range
	}

	iter := s.db.NewIterator(&maxRange, nil)
	names := make([]string, 0, 16)
	for iter.Next() {
		names = append(names, string(iter.Key()[1:]))
	}
	iter.Release()
	return names, iter.Error()
}

// Close - close the database
func (s *LevelDBStore) Close() error {
	s.log.Info("close database")
	return s.db.Close()
}
