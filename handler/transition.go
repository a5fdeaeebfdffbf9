// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"math"

	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/payload"
)

// Transition - new balance after applying a payload to the current one
//
// the result is never negative and never outside the int32 range
func Transition(current int32, p *payload.Payload) (int32, error) {
	var result int64
	switch p.Command {
	case payload.PRODUCE:
		result = int64(current) + int64(p.Quantity)
	case payload.CONSUME:
		result = int64(current) - int64(p.Quantity)
	default:
		return current, fault.InvalidTransactionError("payload: " + fault.ErrInvalidCommand.Error())
	}

	if result < 0 || result > math.MaxInt32 {
		return current, fault.ErrInvalidResultantQuantity
	}
	return int32(result), nil
}
