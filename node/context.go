// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/bitmark-inc/prodcon/address"
	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/storage"
)

// state visible to a single transaction
//
// reads are limited to the declared inputs, writes to the declared
// outputs that also fall inside the handler's namespaces
type context struct {
	trx        storage.Transaction
	inputs     map[string]struct{}
	outputs    map[string]struct{}
	namespaces []string
}

func newContext(trx storage.Transaction, inputs []string, outputs []string, namespaces []string) *context {
	c := &context{
		trx:        trx,
		inputs:     make(map[string]struct{}, len(inputs)),
		outputs:    make(map[string]struct{}, len(outputs)),
		namespaces: namespaces,
	}
	for _, a := range inputs {
		c.inputs[a] = struct{}{}
	}
	for _, a := range outputs {
		c.outputs[a] = struct{}{}
	}
	return c
}

func (c *context) Get(addr string) ([]byte, bool, error) {
	if _, ok := c.inputs[addr]; !ok {
		return nil, false, fault.ErrAddressNotAuthorized
	}
	return c.trx.Get(storage.Pool.State, []byte(addr))
}

func (c *context) Set(addr string, value []byte) error {
	if _, ok := c.outputs[addr]; !ok {
		return fault.ErrAddressNotAuthorized
	}
	if !c.inNamespace(addr) {
		return fault.ErrAddressNotAuthorized
	}
	c.trx.Put(storage.Pool.State, []byte(addr), value)
	return nil
}

func (c *context) inNamespace(addr string) bool {
	for _, prefix := range c.namespaces {
		if address.InNamespace(prefix, addr) {
			return true
		}
	}
	return false
}
