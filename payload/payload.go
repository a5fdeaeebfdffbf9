// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payload - the canonical produce/consume request
//
// Encoding is a protobuf Action message, decoding rejects anything
// that could not have been produced by Encode: bytes are accepted only
// when packing the decoded payload gives them back exactly.
package payload

import (
	"bytes"
	"strings"
	"unicode/utf8"

	proto "github.com/gogo/protobuf/proto"

	"github.com/bitmark-inc/prodcon/fault"
)

// Payload - a decoded request
type Payload struct {
	Command    Command `json:"command"`
	Identifier string  `json:"identifier"`
	Quantity   int32   `json:"quantity"`
}

// ParseCommand - convert a command name as typed by a user
func ParseCommand(s string) (Command, error) {
	if v, ok := commandValues[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return Command(v), nil
	}
	return 0, fault.ErrInvalidCommand
}

// Validate - check the fields can be encoded
func (p Payload) Validate() error {
	if !p.Command.IsValid() {
		return fault.ErrInvalidCommand
	}
	if "" == p.Identifier {
		return fault.ErrEmptyIdentifier
	}
	if !utf8.ValidString(p.Identifier) {
		return fault.ErrIdentifierNotUTF8
	}
	if p.Quantity < 0 {
		return fault.ErrNegativeQuantity
	}
	return nil
}

// Pack - canonical bytes of a payload
func (p Payload) Pack() ([]byte, error) {
	if err := p.Validate(); nil != err {
		return nil, err
	}
	action := &Action{
		Command:    p.Command,
		Identifier: p.Identifier,
		Quantity:   p.Quantity,
	}
	buffer, err := proto.Marshal(action)
	if nil != err {
		return nil, fault.EncodingError("payload marshal: " + err.Error())
	}
	return buffer, nil
}

// Encode - canonical bytes for a command, identifier and quantity
func Encode(command Command, identifier string, quantity int32) ([]byte, error) {
	return Payload{
		Command:    command,
		Identifier: identifier,
		Quantity:   quantity,
	}.Pack()
}

// Decode - parse payload bytes
//
// all failures are invalid transactions since the bytes came from
// an untrusted submitter
func Decode(buffer []byte) (*Payload, error) {
	action := &Action{}
	if err := proto.Unmarshal(buffer, action); nil != err {
		return nil, fault.InvalidTransactionError("payload decode: " + err.Error())
	}

	p := &Payload{
		Command:    action.Command,
		Identifier: action.Identifier,
		Quantity:   action.Quantity,
	}
	if err := p.Validate(); nil != err {
		return nil, fault.InvalidTransactionError("payload: " + err.Error())
	}

	// only the exact bytes Pack would produce
	canonical, err := p.Pack()
	if nil != err {
		return nil, fault.InvalidTransactionError("payload: " + err.Error())
	}
	if !bytes.Equal(canonical, buffer) {
		return nil, fault.ErrNonCanonicalPayload
	}
	return p, nil
}
