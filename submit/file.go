// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submit

import (
	"io/ioutil"
)

// DefaultBatchFile - where a batch list goes when no URL is given
const DefaultBatchFile = "default.batch"

// WriteFile - save a serialized batch list for later submission
func WriteFile(fileName string, body []byte) error {
	if "" == fileName {
		fileName = DefaultBatchFile
	}
	return ioutil.WriteFile(fileName, body, 0644)
}
