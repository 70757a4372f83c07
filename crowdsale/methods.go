// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdsale

import (
	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

func init() {
	vm.Register(Kind, vm.Definition{
		// a plain payment buys for the payer
		Receive: func(c *vm.Context) error {
			return buy(c, c.Caller())
		},
		Methods: vm.Methods{
			"buyTokens": {Payable: true, Run: func(c *vm.Context, args vm.Args) error {
				beneficiary, err := args.Address(0)
				if nil != err {
					return err
				}
				return buy(c, beneficiary)
			}},
			"finalize": {Run: func(c *vm.Context, args vm.Args) error {
				founders, err := args.Address(0)
				if nil != err {
					return err
				}
				return finalize(c, founders)
			}},
			"claimRefund": {Run: func(c *vm.Context, args vm.Args) error {
				return claimRefund(c)
			}},
			"addAdmin": {Run: func(c *vm.Context, args vm.Args) error {
				admin, err := args.Address(0)
				if nil != err {
					return err
				}
				return authority.AddAdmin(c, admin)
			}},
			"removeAdmin": {Run: func(c *vm.Context, args vm.Args) error {
				admin, err := args.Address(0)
				if nil != err {
					return err
				}
				return authority.RemoveAdminOrSelf(c, admin)
			}},
			"transferOwnership": {Run: func(c *vm.Context, args vm.Args) error {
				newOwner, err := args.Address(0)
				if nil != err {
					return err
				}
				return authority.TransferOwnership(c, newOwner)
			}},
			"pause": {Run: func(c *vm.Context, args vm.Args) error {
				if err := authority.Require(c, authority.AdminOrOwner); nil != err {
					return err
				}
				return pause(c, get(c.Self()))
			}},
			"unpause": {Run: func(c *vm.Context, args vm.Args) error {
				if err := authority.Require(c, authority.AdminOrOwner); nil != err {
					return err
				}
				return unpause(c, get(c.Self()))
			}},
			"finishMinting": {Run: func(c *vm.Context, args vm.Args) error {
				return finishMinting(c)
			}},
			"startMinting": {Run: func(c *vm.Context, args vm.Args) error {
				return startMinting(c)
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

	vm.Register(VaultKind, vm.Definition{
		Methods: vm.Methods{
			"refund": {Run: func(c *vm.Context, args vm.Args) error {
				investor, err := args.Address(0)
				if nil != err {
					return err
				}
				return refundVault(c, investor)
			}},
		},
	})
}
