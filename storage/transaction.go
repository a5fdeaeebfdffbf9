// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/prodcon/fault"
)

// Transaction - a set of writes committed together or not at all
//
// reads see the pending writes of the same transaction
type Transaction interface {
	Get(*PoolHandle, []byte) ([]byte, bool, error)
	Has(*PoolHandle, []byte) (bool, error)
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	batch   *leveldb.Batch
	pending map[string][]byte
}

// NewDBTransaction - start a transaction, blocks while another one
// is in progress
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	open := nil != poolData.database
	poolData.RUnlock()

	if !open || nil == trx {
		return nil, fault.ErrNotInitialised
	}

	trx.Lock()
	trx.batch = new(leveldb.Batch)
	trx.pending = make(map[string][]byte)
	return trx, nil
}

func (t *transaction) Get(p *PoolHandle, key []byte) ([]byte, bool, error) {
	if value, ok := t.pending[string(p.prefixKey(key))]; ok {
		return value, true, nil
	}
	return p.Get(key)
}

func (t *transaction) Has(p *PoolHandle, key []byte) (bool, error) {
	if _, ok := t.pending[string(p.prefixKey(key))]; ok {
		return true, nil
	}
	return p.Has(key)
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.pending[string(k)] = v
	t.batch.Put(k, v)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(p, key, buffer)
}

// Commit - write all pending data and release the transaction
func (t *transaction) Commit() error {
	defer t.release()

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}
	return poolData.database.Write(t.batch, nil)
}

// Abort - discard all pending data and release the transaction
func (t *transaction) Abort() {
	t.release()
}

func (t *transaction) release() {
	t.batch = nil
	t.pending = nil
	t.Unlock()
}
