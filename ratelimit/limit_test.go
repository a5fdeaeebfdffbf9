// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(0.01), 2)

	assert.Nil(t, ratelimit.Limit(limiter, time.Millisecond))
	assert.Nil(t, ratelimit.Limit(limiter, time.Millisecond))
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(limiter, time.Millisecond), "burst exceeded")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(0.01), 5)

	assert.Nil(t, ratelimit.LimitN(limiter, 3, 10, time.Millisecond))
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 3, 10, time.Millisecond))

	// invalid counts still consume a single token
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 10, time.Millisecond))
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 20, 10, time.Millisecond))
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 20, 10, time.Millisecond))
}
