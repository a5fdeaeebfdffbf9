// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	proto "github.com/golang/protobuf/proto"
)

type TpRegisterRequest_TpProcessRequestHeaderStyle int32

const (
	TpRegisterRequest_HEADER_STYLE_UNSET TpRegisterRequest_TpProcessRequestHeaderStyle = 0
	TpRegisterRequest_EXPANDED           TpRegisterRequest_TpProcessRequestHeaderStyle = 1
	TpRegisterRequest_RAW                TpRegisterRequest_TpProcessRequestHeaderStyle = 2
)

var TpRegisterRequest_TpProcessRequestHeaderStyle_name = map[int32]string{
	0: "HEADER_STYLE_UNSET",
	1: "EXPANDED",
	2: "RAW",
}

func (x TpRegisterRequest_TpProcessRequestHeaderStyle) String() string {
	return proto.EnumName(TpRegisterRequest_TpProcessRequestHeaderStyle_name, int32(x))
}

// TpRegisterRequest - announce a handler to the validator
type TpRegisterRequest struct {
	Family             string                                        `protobuf:"bytes,1,opt,name=family,proto3" json:"family,omitempty"`
	Version            string                                        `protobuf:"bytes,2,opt,name=version,proto3" json:"version,omitempty"`
	Namespaces         []string                                      `protobuf:"bytes,4,rep,name=namespaces,proto3" json:"namespaces,omitempty"`
	MaxOccupancy       uint32                                        `protobuf:"varint,5,opt,name=max_occupancy,json=maxOccupancy,proto3" json:"max_occupancy,omitempty"`
	ProtocolVersion    uint32                                        `protobuf:"varint,6,opt,name=protocol_version,json=protocolVersion,proto3" json:"protocol_version,omitempty"`
	RequestHeaderStyle TpRegisterRequest_TpProcessRequestHeaderStyle `protobuf:"varint,7,opt,name=request_header_style,json=requestHeaderStyle,proto3,enum=TpRegisterRequest_TpProcessRequestHeaderStyle" json:"request_header_style,omitempty"`
}

func (m *TpRegisterRequest) Reset()         { *m = TpRegisterRequest{} }
func (m *TpRegisterRequest) String() string { return proto.CompactTextString(m) }
func (*TpRegisterRequest) ProtoMessage()    {}

type TpRegisterResponse_Status int32

const (
	TpRegisterResponse_STATUS_UNSET TpRegisterResponse_Status = 0
	TpRegisterResponse_OK           TpRegisterResponse_Status = 1
	TpRegisterResponse_ERROR        TpRegisterResponse_Status = 2
)

var TpRegisterResponse_Status_name = map[int32]string{
	0: "STATUS_UNSET",
	1: "OK",
	2: "ERROR",
}

func (x TpRegisterResponse_Status) String() string {
	return proto.EnumName(TpRegisterResponse_Status_name, int32(x))
}

type TpRegisterResponse struct {
	Status          TpRegisterResponse_Status `protobuf:"varint,1,opt,name=status,proto3,enum=TpRegisterResponse_Status" json:"status,omitempty"`
	ProtocolVersion uint32                    `protobuf:"varint,2,opt,name=protocol_version,json=protocolVersion,proto3" json:"protocol_version,omitempty"`
}

func (m *TpRegisterResponse) Reset()         { *m = TpRegisterResponse{} }
func (m *TpRegisterResponse) String() string { return proto.CompactTextString(m) }
func (*TpRegisterResponse) ProtoMessage()    {}

// TpUnregisterRequest - withdraw all handlers of this connection
type TpUnregisterRequest struct{}

func (m *TpUnregisterRequest) Reset()         { *m = TpUnregisterRequest{} }
func (m *TpUnregisterRequest) String() string { return proto.CompactTextString(m) }
func (*TpUnregisterRequest) ProtoMessage()    {}

type TpUnregisterResponse struct {
	Status TpRegisterResponse_Status `protobuf:"varint,1,opt,name=status,proto3,enum=TpUnregisterResponse_Status" json:"status,omitempty"`
}

func (m *TpUnregisterResponse) Reset()         { *m = TpUnregisterResponse{} }
func (m *TpUnregisterResponse) String() string { return proto.CompactTextString(m) }
func (*TpUnregisterResponse) ProtoMessage()    {}

// TpProcessRequest - one transaction to apply within a context
type TpProcessRequest struct {
	Header    *TransactionHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Payload   []byte             `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Signature string             `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
	ContextId string             `protobuf:"bytes,4,opt,name=context_id,json=contextId,proto3" json:"context_id,omitempty"`
}

func (m *TpProcessRequest) Reset()         { *m = TpProcessRequest{} }
func (m *TpProcessRequest) String() string { return proto.CompactTextString(m) }
func (*TpProcessRequest) ProtoMessage()    {}

type TpProcessResponse_Status int32

const (
	TpProcessResponse_STATUS_UNSET        TpProcessResponse_Status = 0
	TpProcessResponse_OK                  TpProcessResponse_Status = 1
	TpProcessResponse_INVALID_TRANSACTION TpProcessResponse_Status = 2
	TpProcessResponse_INTERNAL_ERROR      TpProcessResponse_Status = 3
)

var TpProcessResponse_Status_name = map[int32]string{
	0: "STATUS_UNSET",
	1: "OK",
	2: "INVALID_TRANSACTION",
	3: "INTERNAL_ERROR",
}

func (x TpProcessResponse_Status) String() string {
	return proto.EnumName(TpProcessResponse_Status_name, int32(x))
}

type TpProcessResponse struct {
	Status       TpProcessResponse_Status `protobuf:"varint,1,opt,name=status,proto3,enum=TpProcessResponse_Status" json:"status,omitempty"`
	Message      string                   `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	ExtendedData []byte                   `protobuf:"bytes,3,opt,name=extended_data,json=extendedData,proto3" json:"extended_data,omitempty"`
}

func (m *TpProcessResponse) Reset()         { *m = TpProcessResponse{} }
func (m *TpProcessResponse) String() string { return proto.CompactTextString(m) }
func (*TpProcessResponse) ProtoMessage()    {}

// TpStateEntry - an address and its value
type TpStateEntry struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Data    []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *TpStateEntry) Reset()         { *m = TpStateEntry{} }
func (m *TpStateEntry) String() string { return proto.CompactTextString(m) }
func (*TpStateEntry) ProtoMessage()    {}

type TpStateGetRequest struct {
	ContextId string   `protobuf:"bytes,1,opt,name=context_id,json=contextId,proto3" json:"context_id,omitempty"`
	Addresses []string `protobuf:"bytes,2,rep,name=addresses,proto3" json:"addresses,omitempty"`
}

func (m *TpStateGetRequest) Reset()         { *m = TpStateGetRequest{} }
func (m *TpStateGetRequest) String() string { return proto.CompactTextString(m) }
func (*TpStateGetRequest) ProtoMessage()    {}

// TpStateResponse_Status - shared by get and set responses
type TpStateResponse_Status int32

const (
	TpStateResponse_STATUS_UNSET        TpStateResponse_Status = 0
	TpStateResponse_OK                  TpStateResponse_Status = 1
	TpStateResponse_AUTHORIZATION_ERROR TpStateResponse_Status = 2
)

var TpStateResponse_Status_name = map[int32]string{
	0: "STATUS_UNSET",
	1: "OK",
	2: "AUTHORIZATION_ERROR",
}

func (x TpStateResponse_Status) String() string {
	return proto.EnumName(TpStateResponse_Status_name, int32(x))
}

type TpStateGetResponse struct {
	Entries []*TpStateEntry        `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	Status  TpStateResponse_Status `protobuf:"varint,2,opt,name=status,proto3,enum=TpStateGetResponse_Status" json:"status,omitempty"`
}

func (m *TpStateGetResponse) Reset()         { *m = TpStateGetResponse{} }
func (m *TpStateGetResponse) String() string { return proto.CompactTextString(m) }
func (*TpStateGetResponse) ProtoMessage()    {}

type TpStateSetRequest struct {
	ContextId string          `protobuf:"bytes,1,opt,name=context_id,json=contextId,proto3" json:"context_id,omitempty"`
	Entries   []*TpStateEntry `protobuf:"bytes,2,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (m *TpStateSetRequest) Reset()         { *m = TpStateSetRequest{} }
func (m *TpStateSetRequest) String() string { return proto.CompactTextString(m) }
func (*TpStateSetRequest) ProtoMessage()    {}

type TpStateSetResponse struct {
	Addresses []string               `protobuf:"bytes,1,rep,name=addresses,proto3" json:"addresses,omitempty"`
	Status    TpStateResponse_Status `protobuf:"varint,2,opt,name=status,proto3,enum=TpStateSetResponse_Status" json:"status,omitempty"`
}

func (m *TpStateSetResponse) Reset()         { *m = TpStateSetResponse{} }
func (m *TpStateSetResponse) String() string { return proto.CompactTextString(m) }
func (*TpStateSetResponse) ProtoMessage()    {}
