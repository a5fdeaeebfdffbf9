// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

// State - address scoped store supplied by the host
//
// Get returns false when the address has no value; an error means
// the store itself failed or refused the address.
type State interface {
	Get(address string) ([]byte, bool, error)
	Set(address string, value []byte) error
}
