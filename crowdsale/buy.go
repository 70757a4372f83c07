// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdsale

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/controller"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
	"github.com/ForceProtocol/TokenSaleContracts/whitelist"
)

// BuyTokens - pay amount for tokens minted to beneficiary
func BuyTokens(ctx *vm.Context, sale common.Address, beneficiary common.Address, amount *uint256.Int) error {
	return ctx.CallContract(sale, Kind, amount, func(c *vm.Context) error {
		return buy(c, beneficiary)
	})
}

func buy(c *vm.Context, beneficiary common.Address) error {
	if (common.Address{}) == beneficiary {
		return fault.ErrZeroAddress
	}
	r := get(c.Self())
	amount := c.Value()

	if err := authority.WhenNotPaused(r.pauseHolder(c.Self())); nil != err {
		return err
	}
	now := uint64(c.Now().Unix())
	if r.Finalized || now < r.StartTime || now > r.EndTime {
		return fault.ErrSaleClosed
	}
	if !whitelist.IsWhitelisted(r.Whitelist, beneficiary) {
		return fault.ErrNotWhitelisted
	}
	if amount.Lt(r.MinContribution) {
		return fault.ErrBelowMinimumContribution
	}

	tokens, err := TokensFor(amount, r.Rate, r.TokensSold)
	if nil != err {
		return err
	}
	sold, err := vm.Add(r.TokensSold, tokens)
	if nil != err {
		return err
	}
	if sold.Gt(r.TokenCap) {
		return fault.ErrCapExceeded
	}
	raised, err := vm.Add(r.WeiRaised, amount)
	if nil != err {
		return err
	}

	if err := mint(c, r, beneficiary, tokens); nil != err {
		return err
	}

	r.TokensSold = sold
	r.WeiRaised = raised
	vm.PutRecord(c.Trx(), c.Self(), r)

	if err := forward(c, r, c.Caller(), amount); nil != err {
		return err
	}

	c.Log().Infof("purchase by: %s  for: %s  value: %s  tokens: %s", c.Caller().Hex(), beneficiary.Hex(), amount.Dec(), tokens.Dec())
	c.Emit("TokenPurchase", map[string]string{
		"purchaser":   c.Caller().Hex(),
		"beneficiary": beneficiary.Hex(),
		"value":       amount.Dec(),
		"amount":      tokens.Dec(),
	})
	return nil
}

func mint(c *vm.Context, r *Record, to common.Address, amount *uint256.Int) error {
	if r.direct() {
		return token.Mint(c, r.Token, to, amount)
	}
	return controller.Mint(c, r.Controller, to, amount)
}

// funds go to escrow in the payer's name, or straight to the wallet
func forward(c *vm.Context, r *Record, payer common.Address, amount *uint256.Int) error {
	if (common.Address{}) != r.Vault {
		return deposit(c, r.Vault, payer, amount)
	}
	return c.Transfer(r.Wallet, amount)
}
