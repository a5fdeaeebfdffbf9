// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	proto "github.com/golang/protobuf/proto"
)

// Message_MessageType - discriminator of a validator message
type Message_MessageType int32

// message types used by this module
const (
	Message_DEFAULT                            Message_MessageType = 0
	Message_TP_REGISTER_REQUEST                Message_MessageType = 1
	Message_TP_REGISTER_RESPONSE               Message_MessageType = 2
	Message_TP_UNREGISTER_REQUEST              Message_MessageType = 3
	Message_TP_UNREGISTER_RESPONSE             Message_MessageType = 4
	Message_TP_PROCESS_REQUEST                 Message_MessageType = 5
	Message_TP_PROCESS_RESPONSE                Message_MessageType = 6
	Message_TP_STATE_GET_REQUEST               Message_MessageType = 7
	Message_TP_STATE_GET_RESPONSE              Message_MessageType = 8
	Message_TP_STATE_SET_REQUEST               Message_MessageType = 9
	Message_TP_STATE_SET_RESPONSE              Message_MessageType = 10
	Message_TP_STATE_DELETE_REQUEST            Message_MessageType = 11
	Message_TP_STATE_DELETE_RESPONSE           Message_MessageType = 12
	Message_CLIENT_EVENTS_SUBSCRIBE_REQUEST    Message_MessageType = 500
	Message_CLIENT_EVENTS_SUBSCRIBE_RESPONSE   Message_MessageType = 501
	Message_CLIENT_EVENTS_UNSUBSCRIBE_REQUEST  Message_MessageType = 502
	Message_CLIENT_EVENTS_UNSUBSCRIBE_RESPONSE Message_MessageType = 503
	Message_CLIENT_EVENTS                      Message_MessageType = 504
	Message_PING_REQUEST                       Message_MessageType = 1100
	Message_PING_RESPONSE                      Message_MessageType = 1101
)

var Message_MessageType_name = map[int32]string{
	0:    "DEFAULT",
	1:    "TP_REGISTER_REQUEST",
	2:    "TP_REGISTER_RESPONSE",
	3:    "TP_UNREGISTER_REQUEST",
	4:    "TP_UNREGISTER_RESPONSE",
	5:    "TP_PROCESS_REQUEST",
	6:    "TP_PROCESS_RESPONSE",
	7:    "TP_STATE_GET_REQUEST",
	8:    "TP_STATE_GET_RESPONSE",
	9:    "TP_STATE_SET_REQUEST",
	10:   "TP_STATE_SET_RESPONSE",
	11:   "TP_STATE_DELETE_REQUEST",
	12:   "TP_STATE_DELETE_RESPONSE",
	500:  "CLIENT_EVENTS_SUBSCRIBE_REQUEST",
	501:  "CLIENT_EVENTS_SUBSCRIBE_RESPONSE",
	502:  "CLIENT_EVENTS_UNSUBSCRIBE_REQUEST",
	503:  "CLIENT_EVENTS_UNSUBSCRIBE_RESPONSE",
	504:  "CLIENT_EVENTS",
	1100: "PING_REQUEST",
	1101: "PING_RESPONSE",
}

func (x Message_MessageType) String() string {
	return proto.EnumName(Message_MessageType_name, int32(x))
}

// Message - envelope of every frame exchanged with a validator
type Message struct {
	MessageType   Message_MessageType `protobuf:"varint,1,opt,name=message_type,json=messageType,proto3,enum=Message_MessageType" json:"message_type,omitempty"`
	CorrelationId string              `protobuf:"bytes,2,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	Content       []byte              `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *Message) Reset()         { *m = Message{} }
func (m *Message) String() string { return proto.CompactTextString(m) }
func (*Message) ProtoMessage()    {}

// PingRequest - liveness check from the validator
type PingRequest struct{}

func (m *PingRequest) Reset()         { *m = PingRequest{} }
func (m *PingRequest) String() string { return proto.CompactTextString(m) }
func (*PingRequest) ProtoMessage()    {}

// PingResponse - reply to a liveness check
type PingResponse struct{}

func (m *PingResponse) Reset()         { *m = PingResponse{} }
func (m *PingResponse) String() string { return proto.CompactTextString(m) }
func (*PingResponse) ProtoMessage()    {}
