// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol_test

import (
	"testing"

	proto "github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prodcon/protocol"
)

// field numbers must match the validator's processor.proto
func TestRegisterRequestEncoding(t *testing.T) {
	request := &protocol.TpRegisterRequest{
		Family:             "pc",
		Version:            "1.0",
		Namespaces:         []string{"abc123"},
		MaxOccupancy:       1,
		ProtocolVersion:    1,
		RequestHeaderStyle: protocol.TpRegisterRequest_EXPANDED,
	}
	expected := []byte{
		0x0a, 0x02, 'p', 'c',                     // family = 1
		0x12, 0x03, '1', '.', '0',                // version = 2
		0x22, 0x06, 'a', 'b', 'c', '1', '2', '3', // namespaces = 4
		0x28, 0x01,                               // max_occupancy = 5
		0x30, 0x01,                               // protocol_version = 6
		0x38, 0x01,                               // request_header_style = 7
	}

	data, err := proto.Marshal(request)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, expected, data, "register request bytes")

	decoded := &protocol.TpRegisterRequest{}
	assert.Nil(t, proto.Unmarshal(expected, decoded), "unmarshal")
	assert.Equal(t, uint32(1), decoded.MaxOccupancy, "max occupancy")
	assert.Equal(t, uint32(1), decoded.ProtocolVersion, "protocol version")
}

func TestMessageTypeValues(t *testing.T) {
	items := []struct {
		messageType protocol.Message_MessageType
		value       int32
	}{
		{protocol.Message_TP_REGISTER_REQUEST, 1},
		{protocol.Message_TP_PROCESS_REQUEST, 5},
		{protocol.Message_TP_STATE_SET_RESPONSE, 10},
		{protocol.Message_CLIENT_EVENTS_SUBSCRIBE_REQUEST, 500},
		{protocol.Message_CLIENT_EVENTS, 504},
		{protocol.Message_PING_REQUEST, 1100},
		{protocol.Message_PING_RESPONSE, 1101},
	}
	for _, item := range items {
		assert.Equal(t, item.value, int32(item.messageType), "message type: %s", item.messageType)
	}

	data, err := proto.Marshal(&protocol.Message{
		MessageType:   protocol.Message_PING_REQUEST,
		CorrelationId: "x",
	})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, []byte{0x08, 0xcc, 0x08, 0x12, 0x01, 'x'}, data, "ping message bytes")
}
