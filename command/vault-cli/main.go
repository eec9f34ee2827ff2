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
)

type metadata struct {
	connect  string
	decimals int32
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// amount in units converted to base units
func (m *metadata) amount(s string) (uint64, error) {
	if "" == s {
		return 0, ErrRequiredAmount
	}
	return parseAmount(s, m.decimals)
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "vault-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, C",
			Value:  "",
			Usage:  " vaultd RPC `HOST:PORT`",
			EnvVar: "VAULTD_CONNECT",
		},
		cli.IntFlag{
			Name:  "decimals, d",
			Value: defaultDecimals,
			Usage: " decimal places in one unit `COUNT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an account key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "initialise",
			Usage:     "create and fund the vault for an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, c",
					Value: "",
					Usage: "*collection `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset id `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*funding `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*initial deposit `AMOUNT` in units",
				},
			},
			Action: runInitialise,
		},
		{
			Name:      "transfer",
			Usage:     "move vault ownership to the asset's current custodian",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "vault, V",
					Value: "",
					Usage: "*vault `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*new owner `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "royalty",
			Usage:     "pay a royalty split between the vault and the creator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "vault, V",
					Value: "",
					Usage: "*vault `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*royalty `AMOUNT` in units",
				},
				cli.StringFlag{
					Name:  "creator, r",
					Value: "",
					Usage: "*creator `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*paying `ACCOUNT`",
				},
			},
			Action: runRoyalty,
		},
		{
			Name:      "release",
			Usage:     "pay out the escrow to the last owner and close the vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "vault, V",
					Value: "",
					Usage: "*vault `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*last owner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "collection, c",
					Value: "",
					Usage: "*collection `ACCOUNT`",
				},
			},
			Action: runRelease,
		},
		{
			Name:      "attach-plugin",
			Usage:     "attach a plugin to a collection or asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: "*collection or asset `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "plugin, P",
					Value: "",
					Usage: "*plugin `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "authority, u",
					Value: "",
					Usage: "*update authority `ACCOUNT`",
				},
			},
			Action: runAttachPlugin,
		},
		{
			Name:      "get",
			Usage:     "display a vault record",
			ArgsUsage: "\n   (+ = vault or all of collection, asset and holding)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "vault, V",
					Value: "",
					Usage: "+vault `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "collection, c",
					Value: "",
					Usage: "+collection `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "+asset id `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: "+holding `ACCOUNT` of the asset",
				},
			},
			Action: runGet,
		},
		{
			Name:      "derive",
			Usage:     "compute the vault address for an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, c",
					Value: "",
					Usage: "*collection `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset id `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: "*holding `ACCOUNT` of the asset",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "balance",
			Usage:     "display the ledger balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: "*`ACCOUNT` to query",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "credit",
			Usage:     "credit an account (only on daemons with allow_credit)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: "*`ACCOUNT` to credit",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*`AMOUNT` in units",
				},
			},
			Action: runCredit,
		},
		{
			Name:      "register-collection",
			Usage:     "register a collection and its update authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, c",
					Value: "",
					Usage: "*collection `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "authority, u",
					Value: "",
					Usage: "*update authority `ACCOUNT`",
				},
			},
			Action: runRegisterCollection,
		},
		{
			Name:      "collection",
			Usage:     "display a collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, c",
					Value: "",
					Usage: "*collection `ACCOUNT`",
				},
			},
			Action: runCollection,
		},
		{
			Name:      "register-asset",
			Usage:     "register an asset in a collection with its holding account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset id `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "collection, c",
					Value: "",
					Usage: "*collection `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: "*holding `ACCOUNT` of the asset",
				},
				cli.StringFlag{
					Name:  "custodian, o",
					Value: "",
					Usage: "*custodian `ACCOUNT` of the holding account",
				},
				cli.StringFlag{
					Name:  "authority, u",
					Value: "",
					Usage: "*collection update authority `ACCOUNT`",
				},
			},
			Action: runRegisterAsset,
		},
		{
			Name:      "asset",
			Usage:     "display an asset and its holding account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset id `ACCOUNT`",
				},
			},
			Action: runAsset,
		},
		{
			Name:      "set-custody",
			Usage:     "move a holding account to a new custodian",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: "*holding `ACCOUNT` of the asset",
				},
				cli.StringFlag{
					Name:  "custodian, o",
					Value: "",
					Usage: "*new custodian `ACCOUNT`",
				},
			},
			Action: runSetCustody,
		},
		{
			Name:      "plugins",
			Usage:     "list plugins attached to a collection or asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: "*collection or asset `ACCOUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runPlugins,
		},
		{
			Name:   "info",
			Usage:  "display vaultd status and vault policy",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display vault-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		decimals := c.GlobalInt("decimals")
		if decimals < 0 || decimals > maximumDecimals {
			return ErrInvalidDecimals
		}

		c.App.Metadata["config"] = &metadata{
			connect:  c.GlobalString("connect"),
			decimals: int32(decimals),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
