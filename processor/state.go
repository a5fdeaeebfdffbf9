// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"time"

	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/protocol"
	"github.com/bitmark-inc/prodcon/zmqutil"
)

// state of one transaction context held by the validator
type validatorState struct {
	conn      *zmqutil.Connection
	contextId string
	timeout   time.Duration
}

func (s *validatorState) Get(addr string) ([]byte, bool, error) {
	request := &protocol.TpStateGetRequest{
		ContextId: s.contextId,
		Addresses: []string{addr},
	}
	response := &protocol.TpStateGetResponse{}
	err := s.conn.Request(protocol.Message_TP_STATE_GET_REQUEST, request, protocol.Message_TP_STATE_GET_RESPONSE, response, s.timeout)
	if nil != err {
		return nil, false, err
	}

	switch response.Status {
	case protocol.TpStateResponse_OK:
	case protocol.TpStateResponse_AUTHORIZATION_ERROR:
		return nil, false, fault.ErrAddressNotAuthorized
	default:
		return nil, false, fault.ProcessError(fault.ErrUnexpectedStatus.Error() + ": " + response.Status.String())
	}

	// an unset address comes back as an entry without data
	for _, entry := range response.Entries {
		if addr == entry.Address && 0 != len(entry.Data) {
			return entry.Data, true, nil
		}
	}
	return nil, false, nil
}

func (s *validatorState) Set(addr string, value []byte) error {
	request := &protocol.TpStateSetRequest{
		ContextId: s.contextId,
		Entries: []*protocol.TpStateEntry{
			{Address: addr, Data: value},
		},
	}
	response := &protocol.TpStateSetResponse{}
	err := s.conn.Request(protocol.Message_TP_STATE_SET_REQUEST, request, protocol.Message_TP_STATE_SET_RESPONSE, response, s.timeout)
	if nil != err {
		return err
	}

	switch response.Status {
	case protocol.TpStateResponse_OK:
	case protocol.TpStateResponse_AUTHORIZATION_ERROR:
		return fault.ErrAddressNotAuthorized
	default:
		return fault.ProcessError(fault.ErrUnexpectedStatus.Error() + ": " + response.Status.String())
	}

	for _, a := range response.Addresses {
		if addr == a {
			return nil
		}
	}
	return fault.ProcessError("state set: address not confirmed")
}
