// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/datacentre"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// Transfer - move amount from the caller to to
func Transfer(ctx *vm.Context, tok common.Address, to common.Address, amount *uint256.Int) error {
	return ctx.CallContract(tok, Kind, nil, func(c *vm.Context) error {
		return transfer(c, to, amount)
	})
}

// Approve - allow spender to move amount of the caller's tokens
func Approve(ctx *vm.Context, tok common.Address, spender common.Address, amount *uint256.Int) error {
	return ctx.CallContract(tok, Kind, nil, func(c *vm.Context) error {
		return approve(c, spender, amount)
	})
}

// TransferFrom - caller moves amount from from to to under an allowance
func TransferFrom(ctx *vm.Context, tok common.Address, from common.Address, to common.Address, amount *uint256.Int) error {
	return ctx.CallContract(tok, Kind, nil, func(c *vm.Context) error {
		return transferFrom(c, from, to, amount)
	})
}

func transfer(c *vm.Context, to common.Address, amount *uint256.Int) error {
	if err := authority.WhenNotPaused(c.Self()); nil != err {
		return err
	}
	return move(c, load(c), c.Caller(), to, amount)
}

func approve(c *vm.Context, spender common.Address, amount *uint256.Int) error {
	if err := authority.WhenNotPaused(c.Self()); nil != err {
		return err
	}
	if (common.Address{}) == spender {
		return fault.ErrZeroAddress
	}
	if spender == c.Caller() {
		return fault.ErrSelfTransfer
	}
	r := load(c)
	err := datacentre.SetAllowance(c, r.DataCentre, c.Caller(), spender, amount)
	if nil != err {
		return err
	}
	c.Log().Debugf("approve: %s  spender: %s  amount: %s", c.Caller().Hex(), spender.Hex(), amount.Dec())
	c.Emit("Approval", map[string]string{
		"owner":   c.Caller().Hex(),
		"spender": spender.Hex(),
		"amount":  amount.Dec(),
	})
	return nil
}

func transferFrom(c *vm.Context, from common.Address, to common.Address, amount *uint256.Int) error {
	if err := authority.WhenNotPaused(c.Self()); nil != err {
		return err
	}
	r := load(c)
	remaining, err := vm.Sub(datacentre.Allowance(r.DataCentre, from, c.Caller()), amount, fault.ErrInsufficientAllowance)
	if nil != err {
		return err
	}
	if err := move(c, r, from, to, amount); nil != err {
		return err
	}
	return datacentre.SetAllowance(c, r.DataCentre, from, c.Caller(), remaining)
}

// the checks shared by every balance movement
func move(c *vm.Context, r *Record, from common.Address, to common.Address, amount *uint256.Int) error {
	if (common.Address{}) == to {
		return fault.ErrZeroAddress
	}
	if from == to {
		return fault.ErrSelfTransfer
	}
	if nil == amount || amount.IsZero() {
		return fault.ErrInvalidAmount
	}

	debit, err := vm.Sub(datacentre.BalanceOf(r.DataCentre, from), amount, fault.ErrInsufficientBalance)
	if nil != err {
		return err
	}
	credit, err := vm.Add(datacentre.BalanceOf(r.DataCentre, to), amount)
	if nil != err {
		return err
	}

	if err := datacentre.SetBalance(c, r.DataCentre, from, debit); nil != err {
		return err
	}
	if err := datacentre.SetBalance(c, r.DataCentre, to, credit); nil != err {
		return err
	}
	c.Log().Debugf("transfer: %s → %s  amount: %s", from.Hex(), to.Hex(), amount.Dec())
	c.Emit("Transfer", map[string]string{
		"from":   from.Hex(),
		"to":     to.Hex(),
		"amount": amount.Dec(),
	})
	return nil
}
