// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/prodcon/configuration"
	"github.com/bitmark-inc/prodcon/signing"
)

type keygenReply struct {
	PrivateKeyFile string `json:"private_key_file"`
	PublicKeyFile  string `json:"public_key_file"`
	PublicKey      string `json:"public_key"`
}

func runKeygen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	directory := c.String("directory")

	if m.verbose {
		fmt.Fprintf(m.e, "name: %s\n", name)
		fmt.Fprintf(m.e, "directory: %s\n", directory)
	}

	reply, err := keygen(directory, name)
	if nil != err {
		return err
	}

	return m.printJson(reply)
}

func keygen(directory string, name string) (*keygenReply, error) {
	if "" == name {
		return nil, fmt.Errorf("key name is required")
	}
	if err := configuration.PlainFile(name); nil != err {
		return nil, err
	}

	key, err := signing.GeneratePrivateKey()
	if nil != err {
		return nil, err
	}

	privateFile, publicFile, err := signing.WriteKeyFiles(directory, name, key)
	if nil != err {
		return nil, err
	}

	return &keygenReply{
		PrivateKeyFile: privateFile,
		PublicKeyFile:  publicFile,
		PublicKey:      key.PublicKeyHex(),
	}, nil
}
