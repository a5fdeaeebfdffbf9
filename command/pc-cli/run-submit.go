// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/prodcon/envelope"
	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/payload"
	"github.com/bitmark-inc/prodcon/signing"
	"github.com/bitmark-inc/prodcon/submit"
)

type submitOptions struct {
	command    string
	identifier string
	quantity   int
	hasCount   bool
	url        string
	key        string
}

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	options := submitOptions{
		command:    c.String("command"),
		identifier: c.String("identifier"),
		quantity:   c.Int("quantity"),
		hasCount:   c.IsSet("quantity"),
		url:        c.String("url"),
		key:        c.String("key"),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "command: %s\n", options.command)
		fmt.Fprintf(m.e, "identifier: %s\n", options.identifier)
		fmt.Fprintf(m.e, "quantity: %d\n", options.quantity)
		fmt.Fprintf(m.e, "url: %s\n", options.url)
		fmt.Fprintf(m.e, "key: %s\n", options.key)
	}

	err := submitTransaction(context.Background(), m, options)
	if nil != err {
		return cli.NewExitError(fmt.Sprintf("Unable to submit the transaction %s", err), 1)
	}

	fmt.Fprintf(m.w, "Successfully submitted the transaction\n")
	return nil
}

// everything is built and signed before anything is written or sent
func submitTransaction(ctx context.Context, m *metadata, options submitOptions) error {

	if "" == options.command {
		return fault.ErrRequiredCommand
	}
	if "" == options.identifier {
		return fault.ErrRequiredIdentifier
	}
	if !options.hasCount {
		return fault.ErrRequiredQuantity
	}

	command, err := payload.ParseCommand(options.command)
	if nil != err {
		return err
	}
	if options.quantity > math.MaxInt32 || options.quantity < math.MinInt32 {
		return fault.EncodingError("quantity out of range")
	}

	key, err := signing.ReadPrivateKeyFile(options.key)
	if nil != err {
		return err
	}

	builder := envelope.New(m.family, key)
	batchList, err := builder.Build(command, options.identifier, int32(options.quantity))
	if nil != err {
		return err
	}

	body, err := envelope.Encode(batchList)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "batch: %s\n", batchList.Batches[0].HeaderSignature)
		fmt.Fprintf(m.e, "address: %s\n", m.family.Address(options.identifier))
	}

	if "" == options.url {
		if m.verbose {
			fmt.Fprintf(m.e, "writing: %s\n", submit.DefaultBatchFile)
		}
		return submit.WriteFile(submit.DefaultBatchFile, body)
	}

	client := submit.New(options.url, submit.DefaultTimeout)
	_, response, err := client.Batches(ctx, body)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", response)
	return nil
}
