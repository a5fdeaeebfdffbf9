// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	proto "github.com/golang/protobuf/proto"
)

// TransactionHeader - the signed part of a transaction
type TransactionHeader struct {
	BatcherPublicKey string   `protobuf:"bytes,1,opt,name=batcher_public_key,json=batcherPublicKey,proto3" json:"batcher_public_key,omitempty"`
	Dependencies     []string `protobuf:"bytes,2,rep,name=dependencies,proto3" json:"dependencies,omitempty"`
	FamilyName       string   `protobuf:"bytes,3,opt,name=family_name,json=familyName,proto3" json:"family_name,omitempty"`
	FamilyVersion    string   `protobuf:"bytes,4,opt,name=family_version,json=familyVersion,proto3" json:"family_version,omitempty"`
	Inputs           []string `protobuf:"bytes,5,rep,name=inputs,proto3" json:"inputs,omitempty"`
	Nonce            string   `protobuf:"bytes,6,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Outputs          []string `protobuf:"bytes,7,rep,name=outputs,proto3" json:"outputs,omitempty"`
	PayloadSha512    string   `protobuf:"bytes,9,opt,name=payload_sha512,json=payloadSha512,proto3" json:"payload_sha512,omitempty"`
	SignerPublicKey  string   `protobuf:"bytes,10,opt,name=signer_public_key,json=signerPublicKey,proto3" json:"signer_public_key,omitempty"`
}

func (m *TransactionHeader) Reset()         { *m = TransactionHeader{} }
func (m *TransactionHeader) String() string { return proto.CompactTextString(m) }
func (*TransactionHeader) ProtoMessage()    {}

// Transaction - serialized header, its signature and the payload
type Transaction struct {
	Header          []byte `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	HeaderSignature string `protobuf:"bytes,2,opt,name=header_signature,json=headerSignature,proto3" json:"header_signature,omitempty"`
	Payload         []byte `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return proto.CompactTextString(m) }
func (*Transaction) ProtoMessage()    {}

// BatchHeader - the signed part of a batch
type BatchHeader struct {
	SignerPublicKey string   `protobuf:"bytes,1,opt,name=signer_public_key,json=signerPublicKey,proto3" json:"signer_public_key,omitempty"`
	TransactionIds  []string `protobuf:"bytes,2,rep,name=transaction_ids,json=transactionIds,proto3" json:"transaction_ids,omitempty"`
}

func (m *BatchHeader) Reset()         { *m = BatchHeader{} }
func (m *BatchHeader) String() string { return proto.CompactTextString(m) }
func (*BatchHeader) ProtoMessage()    {}

// Batch - atomic group of transactions
type Batch struct {
	Header          []byte         `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	HeaderSignature string         `protobuf:"bytes,2,opt,name=header_signature,json=headerSignature,proto3" json:"header_signature,omitempty"`
	Transactions    []*Transaction `protobuf:"bytes,3,rep,name=transactions,proto3" json:"transactions,omitempty"`
	Trace           bool           `protobuf:"varint,4,opt,name=trace,proto3" json:"trace,omitempty"`
}

func (m *Batch) Reset()         { *m = Batch{} }
func (m *Batch) String() string { return proto.CompactTextString(m) }
func (*Batch) ProtoMessage()    {}

// BatchList - unsigned transport envelope
type BatchList struct {
	Batches []*Batch `protobuf:"bytes,1,rep,name=batches,proto3" json:"batches,omitempty"`
}

func (m *BatchList) Reset()         { *m = BatchList{} }
func (m *BatchList) String() string { return proto.CompactTextString(m) }
func (*BatchList) ProtoMessage()    {}
