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

// Mint - owner creates amount new tokens for to
func Mint(ctx *vm.Context, tok common.Address, to common.Address, amount *uint256.Int) error {
	return ctx.CallContract(tok, Kind, nil, func(c *vm.Context) error {
		return mint(c, to, amount)
	})
}

func mint(c *vm.Context, to common.Address, amount *uint256.Int) error {
	if err := authority.Require(c, authority.OwnerOnly); nil != err {
		return err
	}
	r := load(c)
	if r.MintingFinished {
		return fault.ErrMintingFinished
	}
	if (common.Address{}) == to {
		return fault.ErrZeroAddress
	}
	if nil == amount || amount.IsZero() {
		return fault.ErrInvalidAmount
	}

	supply, err := vm.Add(datacentre.TotalSupply(r.DataCentre), amount)
	if nil != err {
		return err
	}
	balance, err := vm.Add(datacentre.BalanceOf(r.DataCentre, to), amount)
	if nil != err {
		return err
	}
	if err := datacentre.SetValue(c, r.DataCentre, datacentre.TotalSupplyKey, supply); nil != err {
		return err
	}
	if err := datacentre.SetBalance(c, r.DataCentre, to, balance); nil != err {
		return err
	}
	c.Log().Infof("mint: %s  amount: %s  supply: %s", to.Hex(), amount.Dec(), supply.Dec())
	c.Emit("Mint", map[string]string{
		"to":     to.Hex(),
		"amount": amount.Dec(),
	})
	return nil
}

// FinishMinting - owner closes minting
func FinishMinting(ctx *vm.Context, tok common.Address) error {
	return ctx.CallContract(tok, Kind, nil, func(c *vm.Context) error {
		return setMintingFinished(c, true)
	})
}

// StartMinting - owner reopens minting
func StartMinting(ctx *vm.Context, tok common.Address) error {
	return ctx.CallContract(tok, Kind, nil, func(c *vm.Context) error {
		return setMintingFinished(c, false)
	})
}

func setMintingFinished(c *vm.Context, finished bool) error {
	if err := authority.Require(c, authority.OwnerOnly); nil != err {
		return err
	}
	r := load(c)
	r.MintingFinished = finished
	vm.PutRecord(c.Trx(), c.Self(), r)
	c.Log().Infof("%s minting finished: %t", c.Self().Hex(), finished)
	return nil
}

// Pause - owner stops transfers
func Pause(ctx *vm.Context, tok common.Address) error {
	return ctx.CallContract(tok, Kind, nil, pause)
}

// Unpause - owner restarts transfers
func Unpause(ctx *vm.Context, tok common.Address) error {
	return ctx.CallContract(tok, Kind, nil, unpause)
}

func pause(c *vm.Context) error {
	if err := authority.Require(c, authority.OwnerOnly); nil != err {
		return err
	}
	if err := authority.WhenNotPaused(c.Self()); nil != err {
		return err
	}
	authority.SetPaused(c.Trx(), c.Self(), true)
	c.Log().Infof("%s paused", c.Self().Hex())
	return nil
}

func unpause(c *vm.Context) error {
	if err := authority.Require(c, authority.OwnerOnly); nil != err {
		return err
	}
	if err := authority.WhenPaused(c.Self()); nil != err {
		return err
	}
	authority.SetPaused(c.Trx(), c.Self(), false)
	c.Log().Infof("%s unpaused", c.Self().Hex())
	return nil
}

// TransferOwnership - owner hands the token on
func TransferOwnership(ctx *vm.Context, tok common.Address, newOwner common.Address) error {
	return ctx.CallContract(tok, Kind, nil, func(c *vm.Context) error {
		return authority.TransferOwnership(c, newOwner)
	})
}

// TransferDataCentreOwnership - owner moves a data centre held by the token
func TransferDataCentreOwnership(ctx *vm.Context, tok common.Address, newOwner common.Address) error {
	return ctx.CallContract(tok, Kind, nil, func(c *vm.Context) error {
		return transferDataCentreOwnership(c, newOwner)
	})
}

func transferDataCentreOwnership(c *vm.Context, newOwner common.Address) error {
	if err := authority.Require(c, authority.OwnerOnly); nil != err {
		return err
	}
	return datacentre.TransferOwnership(c, load(c).DataCentre, newOwner)
}
