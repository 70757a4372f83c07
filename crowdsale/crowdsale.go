// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crowdsale - time boxed tiered token sale with a token cap and a refundable goal
//
// A sale runs in one of two modes.  In controller mode it is an admin
// of a controller, mints through it and shares its paused flag.  In
// direct mode it owns the token and keeps a paused flag of its own.
//
// With a goal the contributions are held in an escrow vault until
// Finalize either releases them to the wallet or lets investors claim
// them back; without one every contribution goes straight to the wallet.
package crowdsale

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/controller"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
	"github.com/ForceProtocol/TokenSaleContracts/whitelist"
)

// Kind - contract kind name
const Kind = "crowdsale"

// DefaultMinContribution - 0.1 of a unit
var DefaultMinContribution = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(17))

// Configuration - construction parameters
//
// exactly one of Controller and Token is set; a zero Goal forwards
// funds to Wallet as they arrive
type Configuration struct {
	StartTime       time.Time
	EndTime         time.Time
	Rate            *uint256.Int
	Wallet          common.Address
	Controller      common.Address
	Token           common.Address
	TokenCap        *uint256.Int
	Goal            *uint256.Int
	MinContribution *uint256.Int
	Whitelist       common.Address
}

// Record - stored state of a sale
type Record struct {
	StartTime       uint64
	EndTime         uint64
	Rate            *uint256.Int
	Wallet          common.Address
	Controller      common.Address
	Token           common.Address
	TokenCap        *uint256.Int
	Goal            *uint256.Int
	MinContribution *uint256.Int
	Whitelist       common.Address
	Vault           common.Address
	TokensSold      *uint256.Int
	WeiRaised       *uint256.Int
	Finalized       bool
	GoalReached     bool
}

func isZero(n *uint256.Int) bool {
	return nil == n || n.IsZero()
}

func orZero(n *uint256.Int) *uint256.Int {
	if nil == n {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).Set(n)
}

func (conf *Configuration) validate() error {
	if !conf.StartTime.Before(conf.EndTime) || conf.StartTime.Unix() < 0 {
		return fault.ErrInvalidTimeRange
	}
	if isZero(conf.Rate) {
		return fault.ErrInvalidRate
	}
	if isZero(conf.TokenCap) {
		return fault.ErrInvalidTokenCap
	}
	if (common.Address{}) == conf.Wallet {
		return fault.ErrZeroAddress
	}

	hasController := (common.Address{}) != conf.Controller
	hasToken := (common.Address{}) != conf.Token
	if hasController == hasToken {
		return fault.ErrInvalidMode
	}
	if hasController {
		if err := vm.RequireKind(conf.Controller, controller.Kind); nil != err {
			return err
		}
	} else if err := vm.RequireKind(conf.Token, token.Kind); nil != err {
		return err
	}
	return vm.RequireKind(conf.Whitelist, whitelist.Kind)
}

// Deploy - new sale owned by the deployer
//
// a direct mode sale starts paused and only works once it owns its token
func Deploy(ctx *vm.Context, conf Configuration) (common.Address, error) {
	if err := conf.validate(); nil != err {
		return common.Address{}, err
	}

	r := &Record{
		StartTime:       uint64(conf.StartTime.Unix()),
		EndTime:         uint64(conf.EndTime.Unix()),
		Rate:            orZero(conf.Rate),
		Wallet:          conf.Wallet,
		Controller:      conf.Controller,
		Token:           conf.Token,
		TokenCap:        orZero(conf.TokenCap),
		Goal:            orZero(conf.Goal),
		MinContribution: orZero(conf.MinContribution),
		Whitelist:       conf.Whitelist,
		TokensSold:      uint256.NewInt(0),
		WeiRaised:       uint256.NewInt(0),
	}
	if nil == conf.MinContribution {
		r.MinContribution = new(uint256.Int).Set(DefaultMinContribution)
	}
	if (common.Address{}) != conf.Controller {
		r.Token = controller.Token(conf.Controller)
	}

	return ctx.Create(Kind, nil, func(c *vm.Context) error {
		authority.SetOwner(c.Trx(), c.Self(), c.Caller())
		if r.direct() {
			authority.SetPaused(c.Trx(), c.Self(), true)
		}
		if !r.Goal.IsZero() {
			vault, err := deployVault(c, r.Wallet)
			if nil != err {
				return err
			}
			r.Vault = vault
		}
		vm.PutRecord(c.Trx(), c.Self(), r)
		c.Log().Infof("sale: %s  rate: %s  cap: %s  goal: %s", c.Self().Hex(), r.Rate.Dec(), r.TokenCap.Dec(), r.Goal.Dec())
		return nil
	})
}

func (r *Record) direct() bool {
	return (common.Address{}) == r.Controller
}

// the principal whose paused flag the sale follows
func (r *Record) pauseHolder(sale common.Address) common.Address {
	if r.direct() {
		return sale
	}
	return r.Controller
}

// Get - stored state of a sale
func Get(sale common.Address) (*Record, error) {
	if err := vm.RequireKind(sale, Kind); nil != err {
		return nil, err
	}
	return get(sale), nil
}

func get(sale common.Address) *Record {
	r := &Record{}
	vm.GetRecord(sale, r)
	r.Rate = orZero(r.Rate)
	r.TokenCap = orZero(r.TokenCap)
	r.Goal = orZero(r.Goal)
	r.MinContribution = orZero(r.MinContribution)
	r.TokensSold = orZero(r.TokensSold)
	r.WeiRaised = orZero(r.WeiRaised)
	return r
}

// Paused - sale's running state
func Paused(sale common.Address) bool {
	return authority.Paused(get(sale).pauseHolder(sale))
}

// HasEnded - past the end time or sold out
func HasEnded(sale common.Address, now time.Time) bool {
	return get(sale).hasEnded(now)
}

func (r *Record) hasEnded(now time.Time) bool {
	return uint64(now.Unix()) > r.EndTime || !r.TokensSold.Lt(r.TokenCap)
}

// GoalReached - wei raised covers the goal
func GoalReached(sale common.Address) bool {
	r := get(sale)
	return !r.WeiRaised.Lt(r.Goal)
}

// Deposit - escrowed contribution of investor, zero without a vault
func Deposit(sale common.Address, investor common.Address) *uint256.Int {
	r := get(sale)
	if (common.Address{}) == r.Vault {
		return uint256.NewInt(0)
	}
	return VaultDeposit(r.Vault, investor)
}

// LedgerAuthority - principal that should own the data centre
//
// the token in direct mode, the controller otherwise
func LedgerAuthority(sale common.Address) common.Address {
	r := get(sale)
	if r.direct() {
		return r.Token
	}
	return r.Controller
}

// DataCentre - data centre behind the sale's token
func DataCentre(sale common.Address) common.Address {
	return token.DataCentre(get(sale).Token)
}

// Admins - current admin set
func Admins(sale common.Address) ([]common.Address, error) {
	return authority.Admins(sale)
}
