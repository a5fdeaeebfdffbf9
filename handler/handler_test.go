// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/prodcon/family"
	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/handler"
	"github.com/bitmark-inc/prodcon/handler/mocks"
	"github.com/bitmark-inc/prodcon/payload"
)

func newHandler() *handler.Handler {
	return handler.New(family.Default(), logger.New(category))
}

func mustEncode(t *testing.T, command payload.Command, identifier string, quantity int32) []byte {
	buffer, err := payload.Encode(command, identifier, quantity)
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}
	return buffer
}

func balanceOf(t *testing.T, state memoryState, identifier string) (int32, bool) {
	value, ok := state[family.Default().Address(identifier)]
	if !ok {
		return 0, false
	}
	n, err := handler.DecodeBalance(value)
	if nil != err {
		t.Fatalf("decode balance error: %s", err)
	}
	return n, true
}

func TestRegistration(t *testing.T) {
	h := newHandler()
	assert.Equal(t, "produce-consume", h.FamilyName())
	assert.Equal(t, []string{"1.0"}, h.FamilyVersions())
	assert.Equal(t, []string{family.Default().Prefix()}, h.Namespaces())
}

// produce on empty state
func TestScenarioA(t *testing.T) {
	h := newHandler()
	state := memoryState{}

	err := h.Apply(mustEncode(t, payload.PRODUCE, "widget", 10), state)
	assert.Nil(t, err)

	n, ok := balanceOf(t, state, "widget")
	assert.True(t, ok)
	assert.Equal(t, int32(10), n)
}

// produce then consume
func TestScenarioB(t *testing.T) {
	h := newHandler()
	state := memoryState{}

	assert.Nil(t, h.Apply(mustEncode(t, payload.PRODUCE, "widget", 10), state))
	assert.Nil(t, h.Apply(mustEncode(t, payload.CONSUME, "widget", 4), state))

	n, _ := balanceOf(t, state, "widget")
	assert.Equal(t, int32(6), n)
}

// consume on empty state is rejected and nothing is written
func TestScenarioC(t *testing.T) {
	h := newHandler()
	state := memoryState{}

	err := h.Apply(mustEncode(t, payload.CONSUME, "widget", 1), state)
	assert.Equal(t, fault.ErrInvalidResultantQuantity, err)

	_, ok := balanceOf(t, state, "widget")
	assert.False(t, ok, "address must remain absent")
}

// overflow is rejected and the balance kept
func TestScenarioD(t *testing.T) {
	h := newHandler()
	state := memoryState{}

	assert.Nil(t, h.Apply(mustEncode(t, payload.PRODUCE, "widget", math.MaxInt32), state))
	err := h.Apply(mustEncode(t, payload.PRODUCE, "widget", 1), state)
	assert.Equal(t, fault.ErrInvalidResultantQuantity, err)

	n, _ := balanceOf(t, state, "widget")
	assert.Equal(t, int32(math.MaxInt32), n)
}

func TestConsumeToZero(t *testing.T) {
	h := newHandler()
	state := memoryState{}

	assert.Nil(t, h.Apply(mustEncode(t, payload.PRODUCE, "widget", 3), state))
	assert.Nil(t, h.Apply(mustEncode(t, payload.CONSUME, "widget", 3), state))

	n, ok := balanceOf(t, state, "widget")
	assert.True(t, ok, "zero balance is stored")
	assert.Equal(t, int32(0), n)

	err := h.Apply(mustEncode(t, payload.CONSUME, "widget", 1), state)
	assert.Equal(t, fault.ErrInvalidResultantQuantity, err)
}

// a random sequence never leaves a negative balance and matches a
// reference computed in 64 bits
func TestInvariant(t *testing.T) {
	h := newHandler()
	state := memoryState{}
	r := rand.New(rand.NewSource(42))

	expected := map[string]int64{}
	for i := 0; i < 2000; i += 1 {
		id := fmt.Sprintf("item-%d", r.Intn(5))
		command := payload.Command(r.Intn(2))
		quantity := int32(r.Intn(1000))
		if 0 == r.Intn(50) {
			quantity = math.MaxInt32 - int32(r.Intn(10))
		}

		err := h.Apply(mustEncode(t, command, id, quantity), state)

		next := expected[id]
		if payload.PRODUCE == command {
			next += int64(quantity)
		} else {
			next -= int64(quantity)
		}
		if next < 0 || next > math.MaxInt32 {
			assert.Equal(t, fault.ErrInvalidResultantQuantity, err, "%d: expected rejection", i)
		} else {
			assert.Nil(t, err, "%d: unexpected error", i)
			expected[id] = next
		}

		n, _ := balanceOf(t, state, id)
		if n < 0 {
			t.Fatalf("%d: negative balance: %d", i, n)
		}
		assert.Equal(t, expected[id], int64(n), "%d: balance mismatch", i)
	}
}

func TestDecodeFailureReadsNothing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockState(ctl)

	m.EXPECT().Get(gomock.Any()).Times(0)
	m.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	err := newHandler().Apply([]byte{0xff, 0xff}, m)
	assert.True(t, fault.IsErrInvalidTransaction(err), "expected invalid transaction, got: %v", err)
}

func TestStateGetFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockState(ctl)

	addr := family.Default().Address("widget")
	m.EXPECT().Get(addr).Return(nil, false, fmt.Errorf("disk on fire")).Times(1)
	m.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	err := newHandler().Apply(mustEncode(t, payload.PRODUCE, "widget", 1), m)
	assert.True(t, fault.IsErrInternal(err), "expected internal error, got: %v", err)
	assert.Equal(t, "state get: disk on fire", err.Error())
}

func TestStateGetNotAuthorized(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockState(ctl)

	m.EXPECT().Get(gomock.Any()).Return(nil, false, fault.ErrAddressNotAuthorized).Times(1)

	err := newHandler().Apply(mustEncode(t, payload.PRODUCE, "widget", 1), m)
	assert.Equal(t, fault.ErrAddressNotAuthorized, err)
}

func TestCorruptValue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockState(ctl)

	m.EXPECT().Get(gomock.Any()).Return([]byte{1, 2, 3}, true, nil).Times(1)
	m.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	err := newHandler().Apply(mustEncode(t, payload.PRODUCE, "widget", 1), m)
	assert.Equal(t, fault.ErrCorruptStateValue, err)
	assert.True(t, fault.IsErrInternal(err))
}

func TestStateSetFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockState(ctl)

	addr := family.Default().Address("widget")
	m.EXPECT().Get(addr).Return(handler.EncodeBalance(5), true, nil).Times(1)
	m.EXPECT().Set(addr, handler.EncodeBalance(12)).Return(fmt.Errorf("read only")).Times(1)

	err := newHandler().Apply(mustEncode(t, payload.PRODUCE, "widget", 7), m)
	assert.True(t, fault.IsErrInternal(err), "expected internal error, got: %v", err)
}

func TestSingleWrite(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockState(ctl)

	addr := family.Default().Address("widget")
	gomock.InOrder(
		m.EXPECT().Get(addr).Return(handler.EncodeBalance(10), true, nil).Times(1),
		m.EXPECT().Set(addr, handler.EncodeBalance(6)).Return(nil).Times(1),
	)

	err := newHandler().Apply(mustEncode(t, payload.CONSUME, "widget", 4), m)
	assert.Nil(t, err)
}
