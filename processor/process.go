// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	proto "github.com/golang/protobuf/proto"

	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/protocol"
)

// decode a process request, run its handler and build the response
func (p *Processor) process(content []byte) *protocol.TpProcessResponse {
	request := &protocol.TpProcessRequest{}
	if err := proto.Unmarshal(content, request); nil != err {
		return response(fault.InternalError("process request decode: " + err.Error()))
	}
	if nil == request.Header {
		return response(fault.InvalidTransactionError("missing transaction header"))
	}

	header := request.Header
	h, ok := p.handlers[header.FamilyName+" "+header.FamilyVersion]
	if !ok {
		return response(fault.ErrUnknownFamily)
	}

	s := &validatorState{
		conn:      p.conn,
		contextId: request.ContextId,
		timeout:   p.timeout,
	}
	err := h.Apply(request.Payload, s)
	if nil != err {
		p.log.Infof("transaction: %s  rejected: %s", request.Signature, err)
	} else {
		p.log.Debugf("transaction: %s  ok", request.Signature)
	}
	return response(err)
}

func response(err error) *protocol.TpProcessResponse {
	switch {
	case nil == err:
		return &protocol.TpProcessResponse{
			Status: protocol.TpProcessResponse_OK,
		}
	case fault.IsErrInvalidTransaction(err):
		return &protocol.TpProcessResponse{
			Status:  protocol.TpProcessResponse_INVALID_TRANSACTION,
			Message: err.Error(),
		}
	default:
		return &protocol.TpProcessResponse{
			Status:  protocol.TpProcessResponse_INTERNAL_ERROR,
			Message: err.Error(),
		}
	}
}
