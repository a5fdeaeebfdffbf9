// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - the produce-consume state transition
//
// Apply is deterministic: it depends only on the payload bytes and
// the value held at one address, and it writes at most that one
// address. Hosts decide how state is fetched and committed.
package handler

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/prodcon/family"
	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/payload"
)

// Handler - transaction handler for one family
type Handler struct {
	family family.Family
	log    *logger.L
}

// New - create a handler
func New(f family.Family, log *logger.L) *Handler {
	return &Handler{
		family: f,
		log:    log,
	}
}

// FamilyName - name this handler is registered under
func (h *Handler) FamilyName() string {
	return h.family.Name
}

// FamilyVersions - versions this handler accepts
func (h *Handler) FamilyVersions() []string {
	return []string{h.family.Version}
}

// Namespaces - state prefixes this handler touches
func (h *Handler) Namespaces() []string {
	return h.family.Namespaces()
}

// Apply - decode a payload and commit the new balance
//
// errors are either fault.InvalidTransactionError (permanent, the
// transaction is rejected) or fault.InternalError (node fault)
func (h *Handler) Apply(payloadBytes []byte, state State) error {
	p, err := payload.Decode(payloadBytes)
	if nil != err {
		h.log.Warnf("rejected payload: %s", err)
		return err
	}

	addr := h.family.Address(p.Identifier)

	value, found, err := state.Get(addr)
	if nil != err {
		return classify("state get", err)
	}

	current := int32(0)
	if found {
		current, err = DecodeBalance(value)
		if nil != err {
			h.log.Errorf("address: %s  value: %x  error: %s", addr, value, err)
			return err
		}
	}

	result, err := Transition(current, p)
	if nil != err {
		h.log.Infof("%s %q %d on balance %d: %s", p.Command, p.Identifier, p.Quantity, current, err)
		return err
	}

	err = state.Set(addr, EncodeBalance(result))
	if nil != err {
		return classify("state set", err)
	}

	h.log.Debugf("%s %q %d: %d -> %d", p.Command, p.Identifier, p.Quantity, current, result)
	return nil
}

// keep rejections from the host, anything else is the node's fault
func classify(operation string, err error) error {
	if fault.IsErrInvalidTransaction(err) || fault.IsErrInternal(err) {
		return err
	}
	return fault.InternalError(operation + ": " + err.Error())
}
