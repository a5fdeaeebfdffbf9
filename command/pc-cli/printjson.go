// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
)

// reply of a command as indented JSON
func (m *metadata) printJson(message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(m.w, "%s\n", b)
	return err
}

// one JSON value per line so a stream can be read by line oriented tools
func (m *metadata) printJsonLine(message interface{}) error {
	b, err := json.Marshal(message)
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(m.w, "%s\n", b)
	return err
}
