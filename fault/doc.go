// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Every error is one of a small number of classes, the class
// determines how a failure is reported: an invalid transaction is a
// permanent rejection, an internal error is a fault of the node that
// processed it.
package fault
