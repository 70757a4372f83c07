// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package controller

import (
	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// plain value is accepted while in service
func receive(c *vm.Context) error {
	_, err := active(c)
	return err
}

func init() {
	vm.Register(Kind, vm.Definition{
		Receive: receive,
		Methods: vm.Methods{
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
			"pause": {Run: func(c *vm.Context, args vm.Args) error {
				return pause(c)
			}},
			"unpause": {Run: func(c *vm.Context, args vm.Args) error {
				return unpause(c)
			}},
			"finishMinting": {Run: func(c *vm.Context, args vm.Args) error {
				return setMinting(c, false)
			}},
			"startMinting": {Run: func(c *vm.Context, args vm.Args) error {
				return setMinting(c, true)
			}},
			"transferTokenOwnership": {Run: func(c *vm.Context, args vm.Args) error {
				newOwner, err := args.Address(0)
				if nil != err {
					return err
				}
				return transferTokenOwnership(c, newOwner)
			}},
			"transferDataCentreOwnership": {Run: func(c *vm.Context, args vm.Args) error {
				newOwner, err := args.Address(0)
				if nil != err {
					return err
				}
				return transferDataCentreOwnership(c, newOwner)
			}},
			"addAdmin": {Run: func(c *vm.Context, args vm.Args) error {
				admin, err := args.Address(0)
				if nil != err {
					return err
				}
				if _, err := active(c); nil != err {
					return err
				}
				return authority.AddAdmin(c, admin)
			}},
			"removeAdmin": {Run: func(c *vm.Context, args vm.Args) error {
				admin, err := args.Address(0)
				if nil != err {
					return err
				}
				if _, err := active(c); nil != err {
					return err
				}
				return authority.RemoveAdmin(c, admin)
			}},
			"transferOwnership": {Run: func(c *vm.Context, args vm.Args) error {
				newOwner, err := args.Address(0)
				if nil != err {
					return err
				}
				if _, err := active(c); nil != err {
					return err
				}
				return authority.TransferOwnership(c, newOwner)
			}},
			"kill": {Run: func(c *vm.Context, args vm.Args) error {
				successor, err := args.Address(0)
				if nil != err {
					return err
				}
				return kill(c, successor)
			}},
		},
	})
}
