// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

func init() {
	vm.Register(Kind, vm.Definition{
		Receive: func(c *vm.Context) error {
			c.Log().Infof("deposit from: %s  value: %s", c.Caller().Hex(), c.Value().Dec())
			c.Emit("Deposit", map[string]string{
				"sender": c.Caller().Hex(),
				"value":  c.Value().Dec(),
			})
			return nil
		},
		Methods: vm.Methods{
			"submitTransaction": {Run: func(c *vm.Context, args vm.Args) error {
				destination, err := args.Address(0)
				if nil != err {
					return err
				}
				value, err := args.Amount(1)
				if nil != err {
					return err
				}
				data, err := args.Bytes(2)
				if nil != err {
					return err
				}
				_, err = submit(c, destination, value, data)
				return err
			}},
			"confirmTransaction": {Run: func(c *vm.Context, args vm.Args) error {
				id, err := args.Uint64(0)
				if nil != err {
					return err
				}
				return confirm(c, id)
			}},
			"revokeConfirmation": {Run: func(c *vm.Context, args vm.Args) error {
				id, err := args.Uint64(0)
				if nil != err {
					return err
				}
				return revoke(c, id)
			}},
			"executeTransaction": {Run: func(c *vm.Context, args vm.Args) error {
				id, err := args.Uint64(0)
				if nil != err {
					return err
				}
				return execute(c, id)
			}},
			"changeDailyLimit": {Run: func(c *vm.Context, args vm.Args) error {
				limit, err := args.Amount(0)
				if nil != err {
					return err
				}
				return changeDailyLimit(c, limit)
			}},
		},
	})
}
