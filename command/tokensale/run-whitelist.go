// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/ForceProtocol/TokenSaleContracts/vm"
	"github.com/ForceProtocol/TokenSaleContracts/whitelist"
)

type whitelistEntry struct {
	Account     string `json:"account"`
	Whitelisted bool   `json:"whitelisted"`
}

func runWhitelistAdd(c *cli.Context) error {
	return changeWhitelist(c, "add", whitelist.AddInBulk)
}

func runWhitelistRemove(c *cli.Context) error {
	return changeWhitelist(c, "remove", whitelist.RemoveInBulk)
}

func changeWhitelist(c *cli.Context, action string, change func(*vm.Context, common.Address, []common.Address) error) error {
	m := c.App.Metadata["config"].(*metadata)

	sender, err := requireSender(m)
	if nil != err {
		return err
	}
	if 0 == c.NArg() {
		return fmt.Errorf("%w: account", ErrMissingArgument)
	}
	investors := make([]common.Address, 0, c.NArg())
	for i := 0; i < c.NArg(); i += 1 {
		a, err := addressArgument(c, i)
		if nil != err {
			return err
		}
		investors = append(investors, a)
	}

	a, err := lookup(m)
	if nil != err {
		return err
	}

	err = vm.Execute(sender, func(ctx *vm.Context) error {
		return change(ctx, a.Whitelist, investors)
	})
	if nil != err {
		return err
	}
	m.log.Infof("whitelist %s: %d accounts", action, len(investors))

	entries := make([]whitelistEntry, 0, len(investors))
	for _, investor := range investors {
		entries = append(entries, whitelistEntry{
			Account:     investor.Hex(),
			Whitelisted: whitelist.IsWhitelisted(a.Whitelist, investor),
		})
	}
	return printJson(m.w, entries)
}

func runWhitelistCheck(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	investor, err := addressArgument(c, 0)
	if nil != err {
		return err
	}
	a, err := lookup(m)
	if nil != err {
		return err
	}

	entry := whitelistEntry{Account: investor.Hex()}
	err = vm.View(func() error {
		entry.Whitelisted = whitelist.IsWhitelisted(a.Whitelist, investor)
		return nil
	})
	if nil != err {
		return err
	}
	return printJson(m.w, entry)
}

func runWhitelistList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	a, err := lookup(m)
	if nil != err {
		return err
	}

	var members []common.Address
	err = vm.View(func() error {
		members, err = whitelist.List(a.Whitelist)
		return err
	})
	if nil != err {
		return err
	}

	list := make([]string, 0, len(members))
	for _, member := range members {
		list = append(list, member.Hex())
	}
	return printJson(m.w, list)
}
