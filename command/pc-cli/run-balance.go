// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/handler"
	"github.com/bitmark-inc/prodcon/submit"
)

type balanceReply struct {
	Identifier string `json:"identifier"`
	Address    string `json:"address"`
	Found      bool   `json:"found"`
	Quantity   int32  `json:"quantity"`
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identifier := c.String("identifier")
	url := c.String("url")

	if m.verbose {
		fmt.Fprintf(m.e, "identifier: %s\n", identifier)
		fmt.Fprintf(m.e, "url: %s\n", url)
	}

	reply, err := balance(context.Background(), m, url, identifier)
	if nil != err {
		return err
	}

	return m.printJson(reply)
}

// an address never written has a zero quantity
func balance(ctx context.Context, m *metadata, url string, identifier string) (*balanceReply, error) {
	if "" == identifier {
		return nil, fault.ErrRequiredIdentifier
	}

	addr := m.family.Address(identifier)
	client := submit.New(url, submit.DefaultTimeout)
	data, found, err := client.State(ctx, addr)
	if nil != err {
		return nil, err
	}

	reply := &balanceReply{
		Identifier: identifier,
		Address:    addr,
		Found:      found,
	}
	if found {
		reply.Quantity, err = handler.DecodeBalance(data)
		if nil != err {
			return nil, err
		}
	}
	return reply, nil
}
