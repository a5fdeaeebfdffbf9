// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package protocol - wire messages shared with the ledger network
//
// Field numbers follow the ledger's published schemas so that the
// bytes produced here are accepted by validators and REST gateways.
package protocol
