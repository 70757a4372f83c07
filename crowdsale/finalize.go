// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdsale

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// founders receive one token for every three sold
const foundersDivisor = 3

// Finalize - close the sale once, after it has ended
//
// a reached goal mints the founders' share and releases escrow to the
// wallet, otherwise investors may claim refunds
func Finalize(ctx *vm.Context, sale common.Address, founders common.Address) error {
	return ctx.CallContract(sale, Kind, nil, func(c *vm.Context) error {
		return finalize(c, founders)
	})
}

func finalize(c *vm.Context, founders common.Address) error {
	if err := authority.Require(c, authority.OwnerOnly); nil != err {
		return err
	}
	r := get(c.Self())
	if r.Finalized {
		return fault.ErrAlreadyFinalized
	}
	if !r.hasEnded(c.Now()) {
		return fault.ErrSaleNotEnded
	}

	r.GoalReached = !r.WeiRaised.Lt(r.Goal)
	r.Finalized = true
	vm.PutRecord(c.Trx(), c.Self(), r)
	c.Emit("Finalized", map[string]string{
		"goalReached": strconv.FormatBool(r.GoalReached),
		"raised":      r.WeiRaised.Dec(),
	})

	if r.GoalReached {
		if (common.Address{}) == founders {
			return fault.ErrZeroAddress
		}
		share := new(uint256.Int).Div(r.TokensSold, uint256.NewInt(foundersDivisor))
		if !share.IsZero() {
			if err := mint(c, r, founders, share); nil != err {
				return err
			}
		}
		if (common.Address{}) != r.Vault {
			if err := closeVault(c, r.Vault); nil != err {
				return err
			}
		}
		c.Log().Infof("%s finalized  goal reached  raised: %s  founders: %s", c.Self().Hex(), r.WeiRaised.Dec(), share.Dec())
		return nil
	}

	if err := enableRefunds(c, r.Vault); nil != err {
		return err
	}
	c.Log().Infof("%s finalized  goal missed  raised: %s", c.Self().Hex(), r.WeiRaised.Dec())
	return nil
}

// ClaimRefund - caller takes back an escrowed contribution of a failed sale
func ClaimRefund(ctx *vm.Context, sale common.Address) error {
	return ctx.CallContract(sale, Kind, nil, claimRefund)
}

func claimRefund(c *vm.Context) error {
	r := get(c.Self())
	if !r.Finalized || r.GoalReached {
		return fault.ErrNoRefundAvailable
	}
	return RefundFromVault(c, r.Vault, c.Caller())
}
