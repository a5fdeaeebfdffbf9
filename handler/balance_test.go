// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/handler"
	"github.com/bitmark-inc/prodcon/payload"
)

func TestBalanceEncoding(t *testing.T) {
	items := []struct {
		n       int32
		encoded []byte
	}{
		{0, []byte{0x00, 0x00, 0x00, 0x00}},
		{10, []byte{0x0a, 0x00, 0x00, 0x00}},
		{258, []byte{0x02, 0x01, 0x00, 0x00}},
		{math.MaxInt32, []byte{0xff, 0xff, 0xff, 0x7f}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff}},
	}
	for i, item := range items {
		encoded := handler.EncodeBalance(item.n)
		if !bytes.Equal(item.encoded, encoded) {
			t.Errorf("%d: encoded: %x  expected: %x", i, encoded, item.encoded)
		}
		n, err := handler.DecodeBalance(item.encoded)
		if nil != err {
			t.Fatalf("%d: decode error: %s", i, err)
		}
		if item.n != n {
			t.Errorf("%d: decoded: %d  expected: %d", i, n, item.n)
		}
	}

	for _, b := range [][]byte{nil, {1}, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		_, err := handler.DecodeBalance(b)
		assert.Equal(t, fault.ErrCorruptStateValue, err, "length %d", len(b))
	}
}

func TestTransition(t *testing.T) {
	items := []struct {
		current  int32
		command  payload.Command
		quantity int32
		result   int32
		err      error
	}{
		{0, payload.PRODUCE, 10, 10, nil},
		{10, payload.CONSUME, 4, 6, nil},
		{0, payload.CONSUME, 1, 0, fault.ErrInvalidResultantQuantity},
		{math.MaxInt32, payload.PRODUCE, 1, math.MaxInt32, fault.ErrInvalidResultantQuantity},
		{math.MaxInt32, payload.CONSUME, math.MaxInt32, 0, nil},
		{5, payload.PRODUCE, 0, 5, nil},
		{5, payload.CONSUME, 0, 5, nil},
	}
	for i, item := range items {
		p := &payload.Payload{Command: item.command, Identifier: "x", Quantity: item.quantity}
		result, err := handler.Transition(item.current, p)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.result, result, "%d: result", i)
	}

	_, err := handler.Transition(0, &payload.Payload{Command: payload.Command(3), Identifier: "x"})
	assert.True(t, fault.IsErrInvalidTransaction(err))
}
