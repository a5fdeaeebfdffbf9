// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/binary"

	"github.com/bitmark-inc/prodcon/fault"
)

// BalanceSize - bytes in a stored balance
const BalanceSize = 4

// EncodeBalance - 4 byte little endian two's complement
func EncodeBalance(n int32) []byte {
	buffer := make([]byte, BalanceSize)
	binary.LittleEndian.PutUint32(buffer, uint32(n))
	return buffer
}

// DecodeBalance - inverse of EncodeBalance
func DecodeBalance(buffer []byte) (int32, error) {
	if BalanceSize != len(buffer) {
		return 0, fault.ErrCorruptStateValue
	}
	return int32(binary.LittleEndian.Uint32(buffer)), nil
}
