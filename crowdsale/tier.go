// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdsale

import (
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// bonus percentages, selected by tokens sold before a purchase
type tier struct {
	below uint64 // whole tokens
	bonus uint64 // percent
}

var tiers = []tier{
	{below: 15000000, bonus: 125},
	{below: 45000000, bonus: 120},
	{below: 120000000, bonus: 110},
	{below: 570000000, bonus: 105},
	{below: 1170000000, bonus: 103},
}

const baseBonus = 100

var tokenUnit = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(18))

// Bonus - percentage applied to a purchase when sold tokens are already sold
func Bonus(sold *uint256.Int) uint64 {
	for _, t := range tiers {
		threshold := new(uint256.Int).Mul(uint256.NewInt(t.below), tokenUnit)
		if sold.Lt(threshold) {
			return t.bonus
		}
	}
	return baseBonus
}

// TokensFor - tokens bought by amount at rate when sold are already sold
//
// the whole purchase is priced at the tier in force before it
func TokensFor(amount *uint256.Int, rate *uint256.Int, sold *uint256.Int) (*uint256.Int, error) {
	base, err := vm.Mul(amount, rate)
	if nil != err {
		return nil, err
	}
	scaled, err := vm.Mul(base, uint256.NewInt(Bonus(sold)))
	if nil != err {
		return nil, err
	}
	return scaled.Div(scaled, uint256.NewInt(baseBonus)), nil
}
