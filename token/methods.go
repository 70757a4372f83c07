// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

func init() {
	vm.Register(Kind, vm.Definition{
		Methods: vm.Methods{
			"transfer": {Run: func(c *vm.Context, args vm.Args) error {
				to, err := args.Address(0)
				if nil != err {
					return err
				}
				amount, err := args.Amount(1)
				if nil != err {
					return err
				}
				return transfer(c, to, amount)
			}},
			"approve": {Run: func(c *vm.Context, args vm.Args) error {
				spender, err := args.Address(0)
				if nil != err {
					return err
				}
				amount, err := args.Amount(1)
				if nil != err {
					return err
				}
				return approve(c, spender, amount)
			}},
			"transferFrom": {Run: func(c *vm.Context, args vm.Args) error {
				from, err := args.Address(0)
				if nil != err {
					return err
				}
				to, err := args.Address(1)
				if nil != err {
					return err
				}
				amount, err := args.Amount(2)
				if nil != err {
					return err
				}
				return transferFrom(c, from, to, amount)
			}},
			"mint": {Run: func(c *vm.Context, args vm.Args) error {
				to, err := args.Address(0)
				if nil != err {
					return err
				}
				amount, err := args.Amount(1)
				if nil != err {
					return err
				}
				return mint(c, to, amount)
			}},
			"finishMinting": {Run: func(c *vm.Context, args vm.Args) error {
				return setMintingFinished(c, true)
			}},
			"startMinting": {Run: func(c *vm.Context, args vm.Args) error {
				return setMintingFinished(c, false)
			}},
			"pause": {Run: func(c *vm.Context, args vm.Args) error {
				return pause(c)
			}},
			"unpause": {Run: func(c *vm.Context, args vm.Args) error {
				return unpause(c)
			}},
			"transferOwnership": {Run: func(c *vm.Context, args vm.Args) error {
				newOwner, err := args.Address(0)
				if nil != err {
					return err
				}
				return authority.TransferOwnership(c, newOwner)
			}},
			"transferDataCentreOwnership": {Run: func(c *vm.Context, args vm.Args) error {
				newOwner, err := args.Address(0)
				if nil != err {
					return err
				}
				return transferDataCentreOwnership(c, newOwner)
			}},
		},
	})
}
