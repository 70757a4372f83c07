// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package datacentre - the key-value store behind a token
//
// Holds balances, allowances and named values.  Only the owner of a
// data centre, or the one token bound to it, may write.
package datacentre

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// Kind - contract kind name
const Kind = "datacentre"

// well known value keys
const (
	TotalSupplyKey = "totalSupply"
)

// Record - stored state of a data centre
type Record struct {
	Token common.Address
}

// Deploy - new data centre owned by the deployer
func Deploy(ctx *vm.Context) (common.Address, error) {
	return ctx.Create(Kind, nil, func(c *vm.Context) error {
		authority.SetOwner(c.Trx(), c.Self(), c.Caller())
		vm.PutRecord(c.Trx(), c.Self(), &Record{})
		return nil
	})
}

// Token - the token allowed to write, zero if none
func Token(dc common.Address) common.Address {
	r := Record{}
	vm.GetRecord(dc, &r)
	return r.Token
}

// Bind - owner names the one token that may write besides itself
//
// binding again replaces the previous token
func Bind(ctx *vm.Context, dc common.Address, tok common.Address) error {
	return ctx.CallContract(dc, Kind, nil, func(c *vm.Context) error {
		return bind(c, tok)
	})
}

func bind(c *vm.Context, tok common.Address) error {
	if err := authority.Require(c, authority.OwnerOnly); nil != err {
		return err
	}
	if (common.Address{}) == tok {
		return fault.ErrZeroAddress
	}
	if "" == vm.KindOf(tok) {
		return fault.ErrNotAContract
	}
	vm.PutRecord(c.Trx(), c.Self(), &Record{Token: tok})
	c.Log().Infof("%s bound to token: %s", c.Self().Hex(), tok.Hex())
	return nil
}

// the owner or the bound token
func requireWriter(c *vm.Context) error {
	caller := c.Caller()
	if authority.CanInvoke(caller, c.Self(), authority.OwnerOnly) {
		return nil
	}
	if (common.Address{}) != caller && Token(c.Self()) == caller {
		return nil
	}
	return fault.ErrUnauthorised
}

func balanceKey(dc common.Address, holder common.Address) []byte {
	return append(dc.Bytes(), holder.Bytes()...)
}

func allowanceKey(dc common.Address, owner common.Address, spender common.Address) []byte {
	return append(append(dc.Bytes(), owner.Bytes()...), spender.Bytes()...)
}

func valueKey(dc common.Address, key string) []byte {
	return append(dc.Bytes(), []byte(key)...)
}

// BalanceOf - balance of holder
func BalanceOf(dc common.Address, holder common.Address) *uint256.Int {
	return vm.GetAmount(storage.Pool.Balances, balanceKey(dc, holder))
}

// Allowance - amount spender may move for owner
func Allowance(dc common.Address, owner common.Address, spender common.Address) *uint256.Int {
	return vm.GetAmount(storage.Pool.Allowances, allowanceKey(dc, owner, spender))
}

// Value - named value
func Value(dc common.Address, key string) *uint256.Int {
	return vm.GetAmount(storage.Pool.Values, valueKey(dc, key))
}

// TotalSupply - the total supply value
func TotalSupply(dc common.Address) *uint256.Int {
	return Value(dc, TotalSupplyKey)
}

// Holders - committed balances, for conservation checks and reports
func Holders(dc common.Address) (map[common.Address]*uint256.Int, error) {
	holders := make(map[common.Address]*uint256.Int)
	err := storage.Pool.Balances.NewFetchCursor().Within(dc.Bytes()).Map(func(key []byte, value []byte) error {
		holders[common.BytesToAddress(key[common.AddressLength:])] = new(uint256.Int).SetBytes(value)
		return nil
	})
	return holders, err
}

// SetBalance - write a balance
func SetBalance(ctx *vm.Context, dc common.Address, holder common.Address, amount *uint256.Int) error {
	return ctx.CallContract(dc, Kind, nil, func(c *vm.Context) error {
		if err := requireWriter(c); nil != err {
			return err
		}
		vm.PutAmount(c.Trx(), storage.Pool.Balances, balanceKey(dc, holder), amount)
		return nil
	})
}

// SetAllowance - write an allowance
func SetAllowance(ctx *vm.Context, dc common.Address, owner common.Address, spender common.Address, amount *uint256.Int) error {
	return ctx.CallContract(dc, Kind, nil, func(c *vm.Context) error {
		if err := requireWriter(c); nil != err {
			return err
		}
		vm.PutAmount(c.Trx(), storage.Pool.Allowances, allowanceKey(dc, owner, spender), amount)
		return nil
	})
}

// SetValue - write a named value
func SetValue(ctx *vm.Context, dc common.Address, key string, amount *uint256.Int) error {
	return ctx.CallContract(dc, Kind, nil, func(c *vm.Context) error {
		if err := requireWriter(c); nil != err {
			return err
		}
		vm.PutAmount(c.Trx(), storage.Pool.Values, valueKey(dc, key), amount)
		return nil
	})
}

// TransferOwnership - owner hands the data centre on
func TransferOwnership(ctx *vm.Context, dc common.Address, newOwner common.Address) error {
	return ctx.CallContract(dc, Kind, nil, func(c *vm.Context) error {
		return authority.TransferOwnership(c, newOwner)
	})
}

func init() {
	vm.Register(Kind, vm.Definition{
		Methods: vm.Methods{
			"bind": {Run: func(c *vm.Context, args vm.Args) error {
				tok, err := args.Address(0)
				if nil != err {
					return err
				}
				return bind(c, tok)
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
