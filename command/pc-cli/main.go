// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/prodcon/family"
	"github.com/bitmark-inc/prodcon/processor"
	"github.com/bitmark-inc/prodcon/submit"
)

type metadata struct {
	family  family.Family
	verbose bool
	e       io.Writer
	w       io.Writer
}

// defaults
const (
	defaultKeyFile = "/etc/sawtooth/keys/validator.priv"
	defaultRestAPI = "http://localhost:8008"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "pc-cli"
	app.Usage = "produce and consume quantities on a ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "family, f",
			Value: family.DefaultName,
			Usage: " transaction family `NAME`",
		},
		cli.StringFlag{
			Name:  "family-version",
			Value: family.DefaultVersion,
			Usage: " transaction family `VERSION`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "submit",
			Usage:     "sign a produce or consume transaction and submit it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "command, C",
					Value: "",
					Usage: "*produce or consume `COMMAND`",
				},
				cli.StringFlag{
					Name:  "identifier, I",
					Value: "",
					Usage: "*item identifier `STRING`",
				},
				cli.IntFlag{
					Name:  "quantity, Q",
					Value: 0,
					Usage: "*quantity to produce or consume `COUNT`",
				},
				cli.StringFlag{
					Name:  "url, U",
					Value: "",
					Usage: " REST API `URL`, batch list written to " + submit.DefaultBatchFile + " if omitted",
				},
				cli.StringFlag{
					Name:  "key, K",
					Value: defaultKeyFile,
					Usage: " private key `FILE`",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "keygen",
			Usage:     "generate a secp256k1 key pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "client",
					Usage: " key file base `NAME`",
				},
				cli.StringFlag{
					Name:  "directory, d",
					Value: ".",
					Usage: " output `DIRECTORY`",
				},
			},
			Action: runKeygen,
		},
		{
			Name:      "address",
			Usage:     "state address of an identifier",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "identifier, I",
					Value: "",
					Usage: "*item identifier `STRING`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "balance",
			Usage:     "current quantity of an identifier",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "identifier, I",
					Value: "",
					Usage: "*item identifier `STRING`",
				},
				cli.StringFlag{
					Name:  "url, U",
					Value: defaultRestAPI,
					Usage: " REST API `URL`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "status",
			Usage:     "status of submitted batches",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "id, i",
					Usage: "*batch `ID` (repeatable)",
				},
				cli.StringFlag{
					Name:  "url, U",
					Value: defaultRestAPI,
					Usage: " REST API `URL`",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "watch",
			Usage:     "print state changes of the family as blocks commit",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "validator, V",
					Value: processor.DefaultValidator,
					Usage: " validator `ENDPOINT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " stop after `COUNT` event lists, 0 = run until interrupted",
				},
				cli.DurationFlag{
					Name:  "timeout, t",
					Value: processor.DefaultTimeout,
					Usage: " validator request `TIMEOUT`",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display pc-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		f := family.Family{
			Name:    c.GlobalString("family"),
			Version: c.GlobalString("family-version"),
		}
		if "" == f.Name || "" == f.Version {
			return fmt.Errorf("family: name and version are required")
		}

		c.App.Metadata["config"] = &metadata{
			family:  f,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
