// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package deployment - lay out a complete sale in one call and record
// where everything ended up
package deployment

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/controlcentre"
	"github.com/ForceProtocol/TokenSaleContracts/controller"
	"github.com/ForceProtocol/TokenSaleContracts/crowdsale"
	"github.com/ForceProtocol/TokenSaleContracts/datacentre"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/multisig"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
	"github.com/ForceProtocol/TokenSaleContracts/whitelist"
)

// names in the address book
const (
	WalletName        = "wallet"
	TokenName         = "token"
	DataCentreName    = "datacentre"
	ControllerName    = "controller"
	WhitelistName     = "whitelist"
	CrowdsaleName     = "crowdsale"
	ControlCentreName = "controlcentre"
)

// Parameters - everything the sequence needs
type Parameters struct {
	Admins     []common.Address
	Required   uint64
	DailyLimit *uint256.Int

	TokenName string
	Symbol    string
	Decimals  uint64

	StartTime       time.Time
	EndTime         time.Time
	Rate            *uint256.Int
	TokenCap        *uint256.Int
	Goal            *uint256.Int
	MinContribution *uint256.Int

	// minted through the controller once it runs; a zero PremintTo means the first admin
	Premint   *uint256.Int
	PremintTo common.Address

	// controller and control centre ownership end up with the wallet
	Handover bool

	Whitelisted []common.Address
}

// Addresses - where each contract was created
type Addresses struct {
	Wallet        common.Address
	Token         common.Address
	DataCentre    common.Address
	Controller    common.Address
	Whitelist     common.Address
	Crowdsale     common.Address
	ControlCentre common.Address
}

// Names - address book view of a
func (a *Addresses) Names() map[string]common.Address {
	return map[string]common.Address{
		WalletName:        a.Wallet,
		TokenName:         a.Token,
		DataCentreName:    a.DataCentre,
		ControllerName:    a.Controller,
		WhitelistName:     a.Whitelist,
		CrowdsaleName:     a.Crowdsale,
		ControlCentreName: a.ControlCentre,
	}
}

// Deploy - run the whole sequence as deployer in a single call
//
// nothing is stored unless every step succeeds
func Deploy(deployer common.Address, p *Parameters) (*Addresses, error) {
	if nil == p {
		return nil, fault.ErrInvalidArgument
	}
	a := &Addresses{}
	err := vm.Execute(deployer, func(ctx *vm.Context) error {
		if err := deploy(ctx, p, a); nil != err {
			return err
		}
		for name, address := range a.Names() {
			ctx.SetName(name, address)
		}
		ctx.Log().Infof("deployed sale: %s  controller: %s  wallet: %s", a.Crowdsale.Hex(), a.Controller.Hex(), a.Wallet.Hex())
		return nil
	})
	if nil != err {
		return nil, err
	}
	return a, nil
}

func deploy(ctx *vm.Context, p *Parameters, a *Addresses) error {
	var err error

	a.Wallet, err = multisig.Deploy(ctx, p.Admins, p.Required, p.DailyLimit)
	if nil != err {
		return err
	}

	a.DataCentre, err = datacentre.Deploy(ctx)
	if nil != err {
		return err
	}
	a.Token, err = token.Deploy(ctx, a.DataCentre, p.TokenName, p.Symbol, p.Decimals)
	if nil != err {
		return err
	}
	a.Controller, err = controller.Deploy(ctx, a.Token, a.DataCentre)
	if nil != err {
		return err
	}

	if err := token.TransferOwnership(ctx, a.Token, a.Controller); nil != err {
		return err
	}
	if err := datacentre.TransferOwnership(ctx, a.DataCentre, a.Controller); nil != err {
		return err
	}
	if err := controller.Unpause(ctx, a.Controller); nil != err {
		return err
	}

	a.Whitelist, err = whitelist.Deploy(ctx)
	if nil != err {
		return err
	}
	if len(p.Whitelisted) > 0 {
		if err := whitelist.AddInBulk(ctx, a.Whitelist, p.Whitelisted); nil != err {
			return err
		}
	}

	a.Crowdsale, err = crowdsale.Deploy(ctx, crowdsale.Configuration{
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		Rate:            p.Rate,
		Wallet:          a.Wallet,
		Controller:      a.Controller,
		TokenCap:        p.TokenCap,
		Goal:            p.Goal,
		MinContribution: p.MinContribution,
		Whitelist:       a.Whitelist,
	})
	if nil != err {
		return err
	}
	if err := controller.AddAdmin(ctx, a.Controller, a.Crowdsale); nil != err {
		return err
	}

	a.ControlCentre, err = controlcentre.Deploy(ctx)
	if nil != err {
		return err
	}

	if nil != p.Premint && !p.Premint.IsZero() {
		to := p.PremintTo
		if (common.Address{}) == to {
			to = p.Admins[0]
		}
		if err := controller.Mint(ctx, a.Controller, to, p.Premint); nil != err {
			return err
		}
	}

	if p.Handover {
		if err := controller.TransferOwnership(ctx, a.Controller, a.Wallet); nil != err {
			return err
		}
		if err := controlcentre.TransferOwnership(ctx, a.ControlCentre, a.Wallet); nil != err {
			return err
		}
	}
	return nil
}

// Lookup - addresses recorded by an earlier Deploy
func Lookup() (*Addresses, error) {
	a := &Addresses{}
	err := vm.View(func() error {
		targets := map[string]*common.Address{
			WalletName:        &a.Wallet,
			TokenName:         &a.Token,
			DataCentreName:    &a.DataCentre,
			ControllerName:    &a.Controller,
			WhitelistName:     &a.Whitelist,
			CrowdsaleName:     &a.Crowdsale,
			ControlCentreName: &a.ControlCentre,
		}
		for name, target := range targets {
			address, err := vm.LookupName(name)
			if nil != err {
				return err
			}
			*target = address
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return a, nil
}
