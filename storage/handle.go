// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/prodcon/fault"
)

// PoolHandle - access to one prefixed table
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// second result is false if the key is not present
func (p *PoolHandle) Get(key []byte) ([]byte, bool, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil, false, fault.ErrNotInitialised
	}
	value, err := poolData.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	}
	if nil != err {
		return nil, false, err
	}
	return value, true, nil
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return false, fault.ErrNotInitialised
	}
	return poolData.database.Has(p.prefixKey(key), nil)
}

// GetN - read a record and decode the first 8 bytes as big endian uint64
func (p *PoolHandle) GetN(key []byte) (uint64, bool, error) {
	buffer, found, err := p.Get(key)
	if nil != err || !found {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, fault.InternalError("truncated count record")
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// List - all elements whose key begins with the given key prefix,
// at most max of them (0 => no limit)
func (p *PoolHandle) List(keyPrefix []byte, max int) ([]Element, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil, fault.ErrNotInitialised
	}

	r := ldb_util.BytesPrefix(p.prefixKey(keyPrefix))
	iter := poolData.database.NewIterator(r, nil)
	defer iter.Release()

	results := make([]Element, 0, 16)
	for iter.Next() {
		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := make([]byte, len(iter.Key())-1)
		copy(key, iter.Key()[1:])
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())

		results = append(results, Element{Key: key, Value: value})
		if 0 != max && len(results) >= max {
			break
		}
	}
	return results, iter.Error()
}
