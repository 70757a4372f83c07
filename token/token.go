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
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// Kind - contract kind name
const Kind = "token"

// Record - stored state of a token
type Record struct {
	DataCentre      common.Address
	Name            string
	Symbol          string
	Decimals        uint64
	MintingFinished bool
}

// Deploy - new paused token owned by the deployer
//
// a zero dataCentre creates a private one owned by the token; a shared
// one must be owned by the deployer, which binds it to the new token
func Deploy(ctx *vm.Context, dc common.Address, name string, symbol string, decimals uint64) (common.Address, error) {
	shared := (common.Address{}) != dc
	if shared {
		if err := vm.RequireKind(dc, datacentre.Kind); nil != err {
			return common.Address{}, err
		}
	}
	tok, err := ctx.Create(Kind, nil, func(c *vm.Context) error {
		if (common.Address{}) == dc {
			var err error
			dc, err = datacentre.Deploy(c)
			if nil != err {
				return err
			}
			if err := datacentre.Bind(c, dc, c.Self()); nil != err {
				return err
			}
		}
		authority.SetOwner(c.Trx(), c.Self(), c.Caller())
		authority.SetPaused(c.Trx(), c.Self(), true)
		vm.PutRecord(c.Trx(), c.Self(), &Record{
			DataCentre: dc,
			Name:       name,
			Symbol:     symbol,
			Decimals:   decimals,
		})
		return nil
	})
	if nil != err {
		return common.Address{}, err
	}
	if shared {
		if err := datacentre.Bind(ctx, dc, tok); nil != err {
			return common.Address{}, err
		}
	}
	return tok, nil
}

// Get - stored state of a token
func Get(tok common.Address) (*Record, error) {
	if err := vm.RequireKind(tok, Kind); nil != err {
		return nil, err
	}
	r := &Record{}
	vm.GetRecord(tok, r)
	return r, nil
}

func load(c *vm.Context) *Record {
	r := &Record{}
	vm.GetRecord(c.Self(), r)
	return r
}

// DataCentre - store used by a token
func DataCentre(tok common.Address) common.Address {
	r := &Record{}
	vm.GetRecord(tok, r)
	return r.DataCentre
}

// BalanceOf - token balance of holder
func BalanceOf(tok common.Address, holder common.Address) *uint256.Int {
	return datacentre.BalanceOf(DataCentre(tok), holder)
}

// Allowance - amount spender may move for owner
func Allowance(tok common.Address, owner common.Address, spender common.Address) *uint256.Int {
	return datacentre.Allowance(DataCentre(tok), owner, spender)
}

// TotalSupply - all tokens minted
func TotalSupply(tok common.Address) *uint256.Int {
	return datacentre.TotalSupply(DataCentre(tok))
}

// MintingFinished - true once minting has been closed
func MintingFinished(tok common.Address) bool {
	r := &Record{}
	vm.GetRecord(tok, r)
	return r.MintingFinished
}

// Paused - transfers and approvals are blocked
func Paused(tok common.Address) bool {
	return authority.Paused(tok)
}
