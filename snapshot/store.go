// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"github.com/bitmark-inc/bstree/fault"
)

// store types
const (
	FileStoreType    = "file"
	LevelDBStoreType = "leveldb"
)

// Store - named snapshots of exported trees
type Store interface {
	Save(name string, data []interface{}) error
	Load(name string) ([]interface{}, error)
	List() ([]string, error)
	Close() error
}

// New - open a store of the given type
//
// location is the directory for a file store and the database path
// for a LevelDB store
func New(storeType string, location string) (Store, error) {
	switch storeType {
	case FileStoreType:
		return NewFileStore(location)
	case LevelDBStoreType:
		return NewLevelDBStore(location, false)
	default:
		return nil, fault.NewKeyError(fault.ErrInvalidStoreType, storeType)
	}
}
