// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package whitelist - owner maintained set of principals allowed to buy
package whitelist

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/membership"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// Kind - contract kind name
const Kind = "whitelist"

// Deploy - new empty whitelist owned by the deployer
func Deploy(ctx *vm.Context) (common.Address, error) {
	return ctx.Create(Kind, nil, func(c *vm.Context) error {
		authority.SetOwner(c.Trx(), c.Self(), c.Caller())
		return nil
	})
}

// IsWhitelisted - membership test
func IsWhitelisted(wl common.Address, investor common.Address) bool {
	return membership.Has(membership.New(wl, membership.Whitelist), investor)
}

// List - committed members in the order they were added
func List(wl common.Address) ([]common.Address, error) {
	return membership.List(membership.New(wl, membership.Whitelist))
}

// Add - owner lists one investor
func Add(ctx *vm.Context, wl common.Address, investor common.Address) error {
	return AddInBulk(ctx, wl, []common.Address{investor})
}

// Remove - owner delists one investor
func Remove(ctx *vm.Context, wl common.Address, investor common.Address) error {
	return RemoveInBulk(ctx, wl, []common.Address{investor})
}

// AddInBulk - owner lists every investor or none
func AddInBulk(ctx *vm.Context, wl common.Address, investors []common.Address) error {
	return ctx.CallContract(wl, Kind, nil, func(c *vm.Context) error {
		return add(c, investors)
	})
}

// RemoveInBulk - owner delists every investor or none
func RemoveInBulk(ctx *vm.Context, wl common.Address, investors []common.Address) error {
	return ctx.CallContract(wl, Kind, nil, func(c *vm.Context) error {
		return remove(c, investors)
	})
}

func add(c *vm.Context, investors []common.Address) error {
	if err := authority.Require(c, authority.OwnerOnly); nil != err {
		return err
	}
	if 0 == len(investors) {
		return fault.ErrEmptyList
	}
	set := membership.New(c.Self(), membership.Whitelist)
	for _, investor := range investors {
		if (common.Address{}) == investor {
			return fault.ErrZeroAddress
		}
		if !membership.Add(c.Trx(), set, investor) {
			return fault.ErrAlreadyWhitelisted
		}
		c.Log().Debugf("whitelisted: %s", investor.Hex())
		c.Emit("Whitelisted", map[string]string{"investor": investor.Hex()})
	}
	c.Log().Infof("%s added: %d", c.Self().Hex(), len(investors))
	return nil
}

func remove(c *vm.Context, investors []common.Address) error {
	if err := authority.Require(c, authority.OwnerOnly); nil != err {
		return err
	}
	if 0 == len(investors) {
		return fault.ErrEmptyList
	}
	set := membership.New(c.Self(), membership.Whitelist)
	for _, investor := range investors {
		if (common.Address{}) == investor {
			return fault.ErrZeroAddress
		}
		if !membership.Remove(c.Trx(), set, investor) {
			return fault.ErrNotWhitelisted
		}
		c.Log().Debugf("delisted: %s", investor.Hex())
		c.Emit("Delisted", map[string]string{"investor": investor.Hex()})
	}
	c.Log().Infof("%s removed: %d", c.Self().Hex(), len(investors))
	return nil
}

// TransferOwnership - owner hands the whitelist on
func TransferOwnership(ctx *vm.Context, wl common.Address, newOwner common.Address) error {
	return ctx.CallContract(wl, Kind, nil, func(c *vm.Context) error {
		return authority.TransferOwnership(c, newOwner)
	})
}

func init() {
	vm.Register(Kind, vm.Definition{
		Methods: vm.Methods{
			"addWhiteListed": {Run: func(c *vm.Context, args vm.Args) error {
				investor, err := args.Address(0)
				if nil != err {
					return err
				}
				return add(c, []common.Address{investor})
			}},
			"removeWhiteListed": {Run: func(c *vm.Context, args vm.Args) error {
				investor, err := args.Address(0)
				if nil != err {
					return err
				}
				return remove(c, []common.Address{investor})
			}},
			"addWhiteListedInBulk": {Run: func(c *vm.Context, args vm.Args) error {
				investors, err := args.Addresses(0)
				if nil != err {
					return err
				}
				return add(c, investors)
			}},
			"removeWhiteListedInBulk": {Run: func(c *vm.Context, args vm.Args) error {
				investors, err := args.Addresses(0)
				if nil != err {
					return err
				}
				return remove(c, investors)
			}},
			"transferOwnership": {Run: func(c *vm.Context, args vm.Args) error {
				newOwner, err := args.Address(0)
				if nil != err {
					return err
				}
				return authority.TransferOwnership(c, newOwner)
			}},
		},
	})
}
