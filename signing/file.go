// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signing

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/prodcon/fault"
)

// ReadPrivateKeyFile - load a hex private key, surrounding white
// space (usually a trailing newline) is ignored
func ReadPrivateKeyFile(fileName string) (*PrivateKey, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, fault.KeyError("read key file: " + err.Error())
	}
	s := strings.TrimSpace(string(data))
	if "" == s {
		return nil, fault.ErrKeyFileEmpty
	}
	return PrivateKeyFromHex(s)
}

// WriteKeyFiles - create <name>.priv and <name>.pub in a directory
//
// existing files are not overwritten
func WriteKeyFiles(directory string, name string, key *PrivateKey) (string, string, error) {
	privateFile := filepath.Join(directory, name+".priv")
	publicFile := filepath.Join(directory, name+".pub")

	for _, f := range []string{privateFile, publicFile} {
		if _, err := os.Stat(f); nil == err {
			return "", "", fault.ExistsError("key file already exists: " + f)
		}
	}

	err := writeNew(privateFile, key.Hex()+"\n", 0600)
	if nil != err {
		return "", "", err
	}
	err = writeNew(publicFile, key.PublicKeyHex()+"\n", 0644)
	if nil != err {
		os.Remove(privateFile)
		return "", "", err
	}
	return privateFile, publicFile, nil
}

func writeNew(fileName string, data string, mode os.FileMode) error {
	fh, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if nil != err {
		return fault.KeyError("create key file: " + err.Error())
	}
	defer fh.Close()
	_, err = fh.WriteString(data)
	if nil != err {
		return fault.KeyError("write key file: " + err.Error())
	}
	return nil
}
