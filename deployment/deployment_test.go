// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deployment_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/controller"
	"github.com/ForceProtocol/TokenSaleContracts/crowdsale"
	"github.com/ForceProtocol/TokenSaleContracts/deployment"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/multisig"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
	"github.com/ForceProtocol/TokenSaleContracts/vm/vmtest"
	"github.com/ForceProtocol/TokenSaleContracts/whitelist"
)

var (
	deployer = vmtest.Account("deployer")
	admin    = vmtest.Account("admin")
	investor = vmtest.Account("investor")
)

func TestMain(m *testing.M) {
	vmtest.Main(m)
}

func parameters() *deployment.Parameters {
	return &deployment.Parameters{
		Admins:      []common.Address{admin},
		Required:    1,
		DailyLimit:  vmtest.Ether(1),
		TokenName:   "Force",
		Symbol:      "FOR",
		Decimals:    18,
		StartTime:   vmtest.Genesis,
		EndTime:     vmtest.Genesis.Add(10 * 24 * time.Hour),
		Rate:        uint256.NewInt(15000),
		TokenCap:    vmtest.Tokens(1500000000),
		Goal:        vmtest.Ether(1600),
		Premint:     vmtest.Tokens(2500000),
		Whitelisted: []common.Address{investor},
	}
}

func TestDeploySequence(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	a, err := deployment.Deploy(deployer, parameters())
	if !assert.Nil(t, err, "deploy") {
		return
	}

	assert.Equal(t, multisig.Kind, vm.KindOf(a.Wallet), "wallet kind")
	assert.Equal(t, crowdsale.Kind, vm.KindOf(a.Crowdsale), "sale kind")

	assert.Equal(t, a.Controller, authority.Owner(a.Token), "token owner")
	assert.Equal(t, a.Controller, authority.Owner(a.DataCentre), "data centre owner")
	assert.Equal(t, deployer, authority.Owner(a.Controller), "controller owner")
	assert.False(t, controller.Paused(a.Controller), "controller running")
	assert.True(t, authority.IsAdmin(a.Controller, a.Crowdsale), "sale is an admin")
	assert.True(t, whitelist.IsWhitelisted(a.Whitelist, investor), "initial whitelist")
	assert.True(t, multisig.IsOwner(a.Wallet, admin), "wallet owner")

	assert.Equal(t, vmtest.Tokens(2500000).Dec(), token.BalanceOf(a.Token, admin).Dec(), "premint")
	vmtest.Conserved(t, a.DataCentre)

	found, err := deployment.Lookup()
	assert.Nil(t, err, "lookup")
	assert.Equal(t, a, found, "address book")
}

func TestDeployHandover(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	p := parameters()
	p.Handover = true
	p.Premint = nil

	a, err := deployment.Deploy(deployer, p)
	if !assert.Nil(t, err, "deploy") {
		return
	}
	assert.Equal(t, a.Wallet, authority.Owner(a.Controller), "controller owner")
	assert.Equal(t, a.Wallet, authority.Owner(a.ControlCentre), "control centre owner")
	assert.True(t, token.TotalSupply(a.Token).IsZero(), "no premint")

	// the deployer has given up control
	err = vm.Execute(deployer, func(ctx *vm.Context) error {
		return controller.Pause(ctx, a.Controller)
	})
	assert.Equal(t, fault.ErrUnauthorised, err, "deployer pause")
}

func TestDeployedSaleAcceptsPurchases(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	a, err := deployment.Deploy(deployer, parameters())
	if !assert.Nil(t, err, "deploy") {
		return
	}

	vmtest.Fund(t, vmtest.Ether(10), investor)
	err = vm.Execute(investor, func(ctx *vm.Context) error {
		return crowdsale.BuyTokens(ctx, a.Crowdsale, investor, vmtest.Ether(1))
	})
	assert.Nil(t, err, "buy")

	// first tier bonus 125%
	assert.Equal(t, vmtest.Tokens(18750).Dec(), token.BalanceOf(a.Token, investor).Dec(), "tokens")
	vmtest.Conserved(t, a.DataCentre)
}

func TestDeployFailureStoresNothing(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	p := parameters()
	p.EndTime = p.StartTime

	a, err := deployment.Deploy(deployer, p)
	assert.Equal(t, fault.ErrInvalidTimeRange, err, "bad time range")
	assert.Nil(t, a, "no addresses")

	_, err = deployment.Lookup()
	assert.Equal(t, fault.ErrNotFoundName, err, "empty address book")
}

func TestDeployRejectsNoAdmins(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	p := parameters()
	p.Admins = nil

	_, err := deployment.Deploy(deployer, p)
	assert.Equal(t, fault.ErrNoOwners, err, "no admins")

	_, err = deployment.Deploy(deployer, nil)
	assert.Equal(t, fault.ErrInvalidArgument, err, "no parameters")
}
