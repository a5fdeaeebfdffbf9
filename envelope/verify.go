// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package envelope

import (
	"crypto/sha512"
	"encoding/hex"

	proto "github.com/golang/protobuf/proto"

	"github.com/bitmark-inc/prodcon/address"
	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/protocol"
	"github.com/bitmark-inc/prodcon/signing"
)

// VerifyTransaction - check signature, payload digest and addresses
func VerifyTransaction(tx *protocol.Transaction) (*protocol.TransactionHeader, error) {
	header := &protocol.TransactionHeader{}
	if err := proto.Unmarshal(tx.Header, header); nil != err {
		return nil, fault.InvalidTransactionError("transaction header decode: " + err.Error())
	}

	if err := signing.Verify(header.SignerPublicKey, tx.Header, tx.HeaderSignature); nil != err {
		return nil, fault.InvalidTransactionError("transaction " + shortId(tx.HeaderSignature) + ": " + err.Error())
	}

	digest := sha512.Sum512(tx.Payload)
	if hex.EncodeToString(digest[:]) != header.PayloadSha512 {
		return nil, fault.ErrPayloadHashMismatch
	}

	for _, a := range header.Inputs {
		if !address.IsValid(a) {
			return nil, fault.ErrInvalidAddress
		}
	}
	for _, a := range header.Outputs {
		if !address.IsValid(a) {
			return nil, fault.ErrInvalidAddress
		}
	}
	return header, nil
}

// VerifyBatch - check the batch signature and every transaction
//
// the batch header must list exactly the contained transactions in
// the same order
func VerifyBatch(batch *protocol.Batch) ([]*protocol.TransactionHeader, error) {
	header := &protocol.BatchHeader{}
	if err := proto.Unmarshal(batch.Header, header); nil != err {
		return nil, fault.InvalidTransactionError("batch header decode: " + err.Error())
	}

	if err := signing.Verify(header.SignerPublicKey, batch.Header, batch.HeaderSignature); nil != err {
		return nil, fault.InvalidTransactionError("batch " + shortId(batch.HeaderSignature) + ": " + err.Error())
	}

	if 0 == len(batch.Transactions) {
		return nil, fault.ErrEmptyBatch
	}
	if len(header.TransactionIds) != len(batch.Transactions) {
		return nil, fault.ErrBatchTransactionsMismatch
	}

	headers := make([]*protocol.TransactionHeader, len(batch.Transactions))
	for i, tx := range batch.Transactions {
		if header.TransactionIds[i] != tx.HeaderSignature {
			return nil, fault.ErrBatchTransactionsMismatch
		}
		txHeader, err := VerifyTransaction(tx)
		if nil != err {
			return nil, err
		}
		if txHeader.BatcherPublicKey != header.SignerPublicKey {
			return nil, fault.ErrBatchSignerMismatch
		}
		headers[i] = txHeader
	}
	return headers, nil
}

func shortId(id string) string {
	if len(id) > 16 {
		return id[:16]
	}
	return id
}
