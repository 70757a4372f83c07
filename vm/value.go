// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
)

// BalanceOf - native value held by address
func BalanceOf(address common.Address) *uint256.Int {
	return GetAmount(storage.Pool.Native, address.Bytes())
}

func transfer(trx storage.Transaction, from common.Address, to common.Address, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	if (common.Address{}) == to {
		return fault.ErrZeroAddress
	}

	balance, err := Sub(BalanceOf(from), amount, fault.ErrInsufficientFunds)
	if nil != err {
		return err
	}
	PutAmount(trx, storage.Pool.Native, from.Bytes(), balance)

	credit, err := Add(BalanceOf(to), amount)
	if nil != err {
		return err
	}
	PutAmount(trx, storage.Pool.Native, to.Bytes(), credit)
	return nil
}

// Transfer - move native value from Self to an account or contract
//
// a contract destination must accept plain transfers
func (c *Context) Transfer(to common.Address, amount *uint256.Int) error {
	return Invoke(c, to, amount, nil)
}

// Fund - create native value for an account
//
// used for genesis allocations and tests; there is no other source
func Fund(address common.Address, amount *uint256.Int) error {
	return Execute(address, func(ctx *Context) error {
		if (common.Address{}) == address {
			return fault.ErrZeroAddress
		}
		balance, err := Add(BalanceOf(address), amount)
		if nil != err {
			return err
		}
		PutAmount(ctx.trx, storage.Pool.Native, address.Bytes(), balance)
		ctx.Log().Infof("fund: %s  amount: %s", address.Hex(), amount.Dec())
		return nil
	})
}
