// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package envelope - construct and verify signed transactions and batches
//
// Construction runs strictly inwards out: payload, transaction
// header, transaction, batch header, batch and finally the batch
// list. Nothing is modified after its enclosing signature is made.
package envelope

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"io"

	proto "github.com/golang/protobuf/proto"

	"github.com/bitmark-inc/prodcon/family"
	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/payload"
	"github.com/bitmark-inc/prodcon/protocol"
	"github.com/bitmark-inc/prodcon/signing"
)

// NonceSize - random bytes in a transaction nonce
const NonceSize = 64

// Builder - holds the family and the signer for a client
type Builder struct {
	family family.Family
	signer signing.Signer
	random io.Reader
}

// New - builder using crypto/rand for nonces
func New(f family.Family, signer signing.Signer) *Builder {
	return NewWithRandom(f, signer, rand.Reader)
}

// NewWithRandom - builder with a specific nonce source
func NewWithRandom(f family.Family, signer signing.Signer, random io.Reader) *Builder {
	return &Builder{
		family: f,
		signer: signer,
		random: random,
	}
}

// Family - the family this builder produces transactions for
func (b *Builder) Family() family.Family {
	return b.family
}

// TransactionHeader - header for a payload touching the given addresses
func (b *Builder) TransactionHeader(inputs []string, outputs []string, payloadBytes []byte) (*protocol.TransactionHeader, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(b.random, nonce); nil != err {
		return nil, fault.SigningError("nonce: " + err.Error())
	}

	digest := sha512.Sum512(payloadBytes)
	publicKey := b.signer.PublicKeyHex()

	header := &protocol.TransactionHeader{
		FamilyName:       b.family.Name,
		FamilyVersion:    b.family.Version,
		Nonce:            hex.EncodeToString(nonce),
		PayloadSha512:    hex.EncodeToString(digest[:]),
		SignerPublicKey:  publicKey,
		BatcherPublicKey: publicKey,
		Inputs:           inputs,
		Outputs:          outputs,
		Dependencies:     []string{},
	}
	return header, nil
}

// Transaction - serialize and sign a header
func (b *Builder) Transaction(header *protocol.TransactionHeader, payloadBytes []byte) (*protocol.Transaction, error) {
	headerBytes, err := proto.Marshal(header)
	if nil != err {
		return nil, fault.EncodingError("transaction header: " + err.Error())
	}
	signature, err := b.signer.Sign(headerBytes)
	if nil != err {
		return nil, err
	}
	tx := &protocol.Transaction{
		Header:          headerBytes,
		HeaderSignature: signature,
		Payload:         payloadBytes,
	}
	return tx, nil
}

// Batch - sign a batch over the transactions in the order given
func (b *Builder) Batch(transactions ...*protocol.Transaction) (*protocol.Batch, error) {
	if 0 == len(transactions) {
		return nil, fault.ErrEmptyBatch
	}

	ids := make([]string, len(transactions))
	for i, tx := range transactions {
		ids[i] = tx.HeaderSignature
	}
	header := &protocol.BatchHeader{
		SignerPublicKey: b.signer.PublicKeyHex(),
		TransactionIds:  ids,
	}
	headerBytes, err := proto.Marshal(header)
	if nil != err {
		return nil, fault.EncodingError("batch header: " + err.Error())
	}
	signature, err := b.signer.Sign(headerBytes)
	if nil != err {
		return nil, err
	}
	batch := &protocol.Batch{
		Header:          headerBytes,
		HeaderSignature: signature,
		Transactions:    transactions,
	}
	return batch, nil
}

// BatchList - wrap batches for transport
func (b *Builder) BatchList(batches ...*protocol.Batch) *protocol.BatchList {
	return &protocol.BatchList{
		Batches: batches,
	}
}

// PayloadTransaction - a signed transaction for one request
func (b *Builder) PayloadTransaction(p payload.Payload) (*protocol.Transaction, error) {
	payloadBytes, err := p.Pack()
	if nil != err {
		return nil, err
	}
	addr := b.family.Address(p.Identifier)
	addresses := []string{addr}

	header, err := b.TransactionHeader(addresses, addresses, payloadBytes)
	if nil != err {
		return nil, err
	}
	return b.Transaction(header, payloadBytes)
}

// Build - complete pipeline for a single request
func (b *Builder) Build(command payload.Command, identifier string, quantity int32) (*protocol.BatchList, error) {
	tx, err := b.PayloadTransaction(payload.Payload{
		Command:    command,
		Identifier: identifier,
		Quantity:   quantity,
	})
	if nil != err {
		return nil, err
	}
	batch, err := b.Batch(tx)
	if nil != err {
		return nil, err
	}
	return b.BatchList(batch), nil
}

// Encode - serialize a batch list for submission
func Encode(batchList *protocol.BatchList) ([]byte, error) {
	buffer, err := proto.Marshal(batchList)
	if nil != err {
		return nil, fault.EncodingError("batch list: " + err.Error())
	}
	return buffer, nil
}

// DecodeBatchList - parse submitted bytes
func DecodeBatchList(buffer []byte) (*protocol.BatchList, error) {
	batchList := &protocol.BatchList{}
	if err := proto.Unmarshal(buffer, batchList); nil != err {
		return nil, fault.InvalidTransactionError("batch list decode: " + err.Error())
	}
	if 0 == len(batchList.Batches) {
		return nil, fault.ErrEmptyBatchList
	}
	return batchList, nil
}
