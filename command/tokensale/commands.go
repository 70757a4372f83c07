// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "fund",
			Usage:     "create native value for an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*whole units `AMOUNT`",
				},
			},
			Action: runFund,
		},
		{
			Name:   "deploy",
			Usage:  "deploy wallet, ledger, controller, whitelist and sale from the configuration",
			Action: runDeploy,
		},
		{
			Name:   "status",
			Usage:  "show the state of the deployed sale",
			Action: runStatus,
		},
		{
			Name:      "balance",
			Usage:     "native value, tokens and refundable deposit of an account",
			ArgsUsage: "[ACCOUNT]",
			Action:    runBalance,
		},
		{
			Name:      "buy",
			Usage:     "buy tokens for sender or a beneficiary",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*native value to pay `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "beneficiary, b",
					Value: "",
					Usage: " token recipient `ACCOUNT` default is sender",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "finalize",
			Usage:     "close an ended sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "founders, f",
					Value: "",
					Usage: "*recipient of the founders tokens `ACCOUNT`",
				},
			},
			Action: runFinalize,
		},
		{
			Name:   "refund",
			Usage:  "claim back the sender's contribution after a failed sale",
			Action: runRefund,
		},
		{
			Name:  "whitelist",
			Usage: "manage the whitelist",
			Subcommands: []cli.Command{
				{
					Name:      "add",
					Usage:     "whitelist accounts",
					ArgsUsage: "ACCOUNT...",
					Action:    runWhitelistAdd,
				},
				{
					Name:      "remove",
					Usage:     "remove accounts from the whitelist",
					ArgsUsage: "ACCOUNT...",
					Action:    runWhitelistRemove,
				},
				{
					Name:      "check",
					Usage:     "is an account whitelisted",
					ArgsUsage: "ACCOUNT",
					Action:    runWhitelistCheck,
				},
				{
					Name:   "list",
					Usage:  "all whitelisted accounts",
					Action: runWhitelistList,
				},
			},
		},
		{
			Name:  "wallet",
			Usage: "multi-signature wallet",
			Subcommands: []cli.Command{
				{
					Name:      "submit",
					Usage:     "propose a transaction and confirm it",
					ArgsUsage: "[TYPE:VALUE...]\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "destination, d",
							Value: "",
							Usage: "*target `ACCOUNT`",
						},
						cli.StringFlag{
							Name:  "value, a",
							Value: "",
							Usage: " native value to send `AMOUNT`",
						},
						cli.StringFlag{
							Name:  "method, m",
							Value: "",
							Usage: " method of the destination `NAME`, none for a plain transfer",
						},
					},
					Action: runWalletSubmit,
				},
				{
					Name:      "confirm",
					Usage:     "confirm a transaction",
					ArgsUsage: "ID",
					Action:    runWalletConfirm,
				},
				{
					Name:      "revoke",
					Usage:     "withdraw a confirmation",
					ArgsUsage: "ID",
					Action:    runWalletRevoke,
				},
				{
					Name:      "execute",
					Usage:     "execute a confirmed transaction",
					ArgsUsage: "ID",
					Action:    runWalletExecute,
				},
				{
					Name:      "show",
					Usage:     "wallet state, or one transaction",
					ArgsUsage: "[ID]",
					Action:    runWalletShow,
				},
			},
		},
		{
			Name:  "controller",
			Usage: "ledger controller",
			Subcommands: []cli.Command{
				{
					Name:   "pause",
					Usage:  "pause the controller and token",
					Action: runControllerPause,
				},
				{
					Name:   "unpause",
					Usage:  "resume the controller and token",
					Action: runControllerUnpause,
				},
				{
					Name:      "mint",
					Usage:     "mint tokens",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "to, t",
							Value: "",
							Usage: "*receiving `ACCOUNT`",
						},
						cli.StringFlag{
							Name:  "amount, a",
							Value: "",
							Usage: "*whole tokens `AMOUNT`",
						},
					},
					Action: runControllerMint,
				},
				{
					Name:      "add-admin",
					Usage:     "grant admin rights",
					ArgsUsage: "ACCOUNT",
					Action:    runControllerAddAdmin,
				},
				{
					Name:      "remove-admin",
					Usage:     "revoke admin rights",
					ArgsUsage: "ACCOUNT",
					Action:    runControllerRemoveAdmin,
				},
				{
					Name:   "finish-minting",
					Usage:  "stop all further minting",
					Action: runControllerFinishMinting,
				},
				{
					Name:   "start-minting",
					Usage:  "allow minting again",
					Action: runControllerStartMinting,
				},
				{
					Name:      "kill",
					Usage:     "retire the controller in favour of a successor",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "successor, s",
							Value: "",
							Usage: "*replacement controller `ACCOUNT`",
						},
					},
					Action: runControllerKill,
				},
			},
		},
	}
}
