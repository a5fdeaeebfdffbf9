// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/prodcon/submit"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ids := c.StringSlice("id")
	url := c.String("url")

	if 0 == len(ids) {
		return fmt.Errorf("at least one batch id is required")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "ids: %v\n", ids)
		fmt.Fprintf(m.e, "url: %s\n", url)
	}

	client := submit.New(url, submit.DefaultTimeout)
	statuses, err := client.Statuses(context.Background(), ids)
	if nil != err {
		return err
	}

	return m.printJson(statuses)
}
