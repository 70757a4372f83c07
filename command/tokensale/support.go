// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/urfave/cli"

	"github.com/ForceProtocol/TokenSaleContracts/configuration"
	"github.com/ForceProtocol/TokenSaleContracts/deployment"
	"github.com/ForceProtocol/TokenSaleContracts/messagebus"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// resolve - hex address or a name from the address book
func resolve(s string) (common.Address, error) {
	if common.IsHexAddress(s) {
		return configuration.ParseAddress(s)
	}
	var address common.Address
	err := vm.View(func() error {
		var err error
		address, err = vm.LookupName(s)
		return err
	})
	return address, err
}

// the global sender, which every state changing command needs
func requireSender(m *metadata) (common.Address, error) {
	if (common.Address{}) == m.sender {
		return common.Address{}, ErrNoSender
	}
	return m.sender, nil
}

// a required address flag
func addressFlag(c *cli.Context, name string) (common.Address, error) {
	s := c.String(name)
	if "" == s {
		return common.Address{}, fmt.Errorf("%w: --%s", ErrMissingArgument, name)
	}
	return resolve(s)
}

// a required address argument
func addressArgument(c *cli.Context, i int) (common.Address, error) {
	s := c.Args().Get(i)
	if "" == s {
		return common.Address{}, fmt.Errorf("%w: argument %d", ErrMissingArgument, i+1)
	}
	return resolve(s)
}

// a required amount flag in whole units
func amountFlag(c *cli.Context, name string, decimals int32) (*uint256.Int, error) {
	n, err := configuration.ParseAmount(c.String(name), decimals)
	if nil != err {
		return nil, err
	}
	if nil == n {
		return nil, fmt.Errorf("%w: --%s", ErrMissingArgument, name)
	}
	return n, nil
}

// a required transaction number argument
func idArgument(c *cli.Context) (uint64, error) {
	s := c.Args().Get(0)
	if "" == s {
		return 0, fmt.Errorf("%w: transaction id", ErrMissingArgument)
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, ErrInvalidTransactionID
	}
	return id, nil
}

// addresses from an earlier deploy
func lookup(m *metadata) (*deployment.Addresses, error) {
	a, err := deployment.Lookup()
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "sale: %s\n", a.Crowdsale.Hex())
	}
	return a, nil
}

func tokenDecimals(m *metadata) int32 {
	return int32(m.config.Sale.Decimals)
}

func native(n *uint256.Int) string {
	return configuration.FormatAmount(n, configuration.NativeDecimals)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// events committed by this command, written to the error stream
func printEvents(m *metadata) {
	events := []vm.Event{}
loop:
	for {
		select {
		case item := <-m.events:
			if e, ok := item.Item.(vm.Event); ok {
				events = append(events, e)
			}
		default:
			break loop
		}
	}
	if 0 == len(events) {
		return
	}
	fmt.Fprintf(m.e, "events:\n")
	_ = printJson(m.e, events)
	if n := messagebus.Bus.Events.Dropped(); 0 != n {
		fmt.Fprintf(m.e, "events dropped: %d\n", n)
	}
}
