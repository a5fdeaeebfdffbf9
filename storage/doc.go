// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++       = concatenation of byte data
// 3. address  = 70 character hex state address as ASCII
// 4. batchId  = batch header signature as ASCII hex
// 5. txId     = transaction header signature as ASCII hex
// 6. count    = big endian uint64 (8 bytes)
//
// State:
//
//   S ++ address               - balance of one identifier
//                                data: 4 byte little endian int32
//
// Batches:
//
//   B ++ batchId               - committed batches
//                                data: count (commit sequence)
//   T ++ txId                  - committed transactions
//                                data: batchId
//
// Meta:
//
//   M ++ "height"              - number of committed batches
//                                data: count
package storage
