// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/prodcon/fault"
)

// Limit - limiting for a single request
//
// a request that would wait longer than maximumDelay is refused
// (0 => wait as long as required)
func Limit(limiter *rate.Limiter, maximumDelay time.Duration) error {
	return reserve(limiter, 1, maximumDelay)
}

// LimitN - limiting for a request covering several items
func LimitN(limiter *rate.Limiter, count int, maximumCount int, maximumDelay time.Duration) error {
	// invalid count gets limited as a single request
	if count <= 0 || count > maximumCount {
		if err := reserve(limiter, 1, maximumDelay); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}
	return reserve(limiter, count, maximumDelay)
}

func reserve(limiter *rate.Limiter, count int, maximumDelay time.Duration) error {
	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	delay := r.Delay()
	if 0 != maximumDelay && delay > maximumDelay {
		r.Cancel()
		return fault.ErrRateLimiting
	}
	time.Sleep(delay)
	return nil
}
