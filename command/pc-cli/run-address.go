// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/prodcon/fault"
)

type addressReply struct {
	Family     string `json:"family"`
	Identifier string `json:"identifier"`
	Namespace  string `json:"namespace"`
	Address    string `json:"address"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identifier := c.String("identifier")
	if "" == identifier {
		return fault.ErrRequiredIdentifier
	}

	return m.printJson(addressReply{
		Family:     m.family.Name,
		Identifier: identifier,
		Namespace:  m.family.Prefix(),
		Address:    m.family.Address(identifier),
	})
}
