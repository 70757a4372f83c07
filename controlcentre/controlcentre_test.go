// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package controlcentre_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/controlcentre"
	"github.com/ForceProtocol/TokenSaleContracts/crowdsale"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/multisig"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
	"github.com/ForceProtocol/TokenSaleContracts/vm/vmtest"
	"github.com/ForceProtocol/TokenSaleContracts/whitelist"
)

var (
	owner    = vmtest.Account("owner")
	stranger = vmtest.Account("stranger")
	founders = []common.Address{
		vmtest.Account("founder-1"),
		vmtest.Account("founder-2"),
		vmtest.Account("founder-3"),
	}
)

type fixture struct {
	cc     common.Address
	sale   common.Address
	token  common.Address
	wallet common.Address
}

func TestMain(m *testing.M) {
	vmtest.Main(m)
}

// a running direct mode sale, a control centre and a 3 of 3 wallet
func setup(t *testing.T) fixture {
	f := fixture{}
	err := vm.Execute(owner, func(ctx *vm.Context) error {
		var err error
		f.wallet, err = multisig.Deploy(ctx, founders, 3, vmtest.Ether(10))
		if nil != err {
			return err
		}
		f.cc, err = controlcentre.Deploy(ctx)
		if nil != err {
			return err
		}
		f.token, err = token.Deploy(ctx, common.Address{}, "Force", "FOR", 18)
		if nil != err {
			return err
		}
		wl, err := whitelist.Deploy(ctx)
		if nil != err {
			return err
		}
		f.sale, err = crowdsale.Deploy(ctx, crowdsale.Configuration{
			StartTime: vmtest.Genesis,
			EndTime:   vmtest.Genesis.Add(5 * 24 * time.Hour),
			Rate:      uint256.NewInt(15000),
			Wallet:    f.wallet,
			Token:     f.token,
			TokenCap:  vmtest.Tokens(1500000000),
			Goal:      vmtest.Ether(1600),
			Whitelist: wl,
		})
		if nil != err {
			return err
		}
		if err := token.TransferOwnership(ctx, f.token, f.sale); nil != err {
			return err
		}
		return crowdsale.Unpause(ctx, f.sale)
	})
	if nil != err {
		t.Fatalf("setup error: %s", err)
	}
	return f
}

func grant(t *testing.T, f fixture) {
	err := vm.Execute(owner, func(ctx *vm.Context) error {
		return crowdsale.AddAdmin(ctx, f.sale, f.cc)
	})
	if nil != err {
		t.Fatalf("grant error: %s", err)
	}
}

func grantGone(t *testing.T, f fixture) {
	assert.False(t, authority.IsAdmin(f.sale, f.cc), "grant given up")
	admins, err := crowdsale.Admins(f.sale)
	assert.Nil(t, err, "admins")
	assert.Equal(t, 0, len(admins), "no admins left")
}

func TestPauseCrowdsale(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	f := setup(t)
	grant(t, f)

	err := vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.PauseCrowdsale(ctx, f.cc, f.sale)
	})
	assert.Nil(t, err, "pause")
	assert.True(t, crowdsale.Paused(f.sale), "sale paused")
	assert.True(t, token.Paused(f.token), "token paused")
	grantGone(t, f)
}

func TestWithoutGrant(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	f := setup(t)

	err := vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.PauseCrowdsale(ctx, f.cc, f.sale)
	})
	assert.Equal(t, fault.ErrUnauthorised, err, "no grant")
	assert.False(t, crowdsale.Paused(f.sale), "sale running")
	assert.False(t, token.Paused(f.token), "token running")

	grant(t, f)
	err = vm.Execute(stranger, func(ctx *vm.Context) error {
		return controlcentre.PauseCrowdsale(ctx, f.cc, f.sale)
	})
	assert.Equal(t, fault.ErrUnauthorised, err, "not the control centre owner")
	assert.True(t, authority.IsAdmin(f.sale, f.cc), "grant kept")
}

func TestUnpauseCrowdsale(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	f := setup(t)
	grant(t, f)
	err := vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.PauseCrowdsale(ctx, f.cc, f.sale)
	})
	assert.Nil(t, err, "pause")

	grant(t, f)
	err = vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.UnpauseCrowdsale(ctx, f.cc, f.sale)
	})
	assert.Nil(t, err, "unpause")
	assert.False(t, crowdsale.Paused(f.sale), "sale running")
	assert.False(t, token.Paused(f.token), "token running")
	grantGone(t, f)
}

func TestFinishAndStartMinting(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	f := setup(t)
	grant(t, f)
	err := vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.FinishMinting(ctx, f.cc, f.sale)
	})
	assert.Nil(t, err, "finish minting")
	assert.True(t, crowdsale.Paused(f.sale), "sale paused")
	assert.True(t, token.MintingFinished(f.token), "minting finished")
	assert.Equal(t, owner, authority.Owner(f.token), "token back with the owner")
	grantGone(t, f)

	err = vm.Execute(owner, func(ctx *vm.Context) error {
		if err := token.TransferOwnership(ctx, f.token, f.sale); nil != err {
			return err
		}
		return crowdsale.AddAdmin(ctx, f.sale, f.cc)
	})
	assert.Nil(t, err, "hand token back")

	err = vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.StartMinting(ctx, f.cc, f.sale)
	})
	assert.Nil(t, err, "start minting")
	assert.False(t, crowdsale.Paused(f.sale), "sale running")
	assert.False(t, token.MintingFinished(f.token), "minting open")
	grantGone(t, f)
}

func TestStartMintingNeedsPausedSale(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	f := setup(t)
	grant(t, f)
	err := vm.Execute(owner, func(ctx *vm.Context) error {
		if err := controlcentre.FinishMinting(ctx, f.cc, f.sale); nil != err {
			return err
		}
		if err := token.TransferOwnership(ctx, f.token, f.sale); nil != err {
			return err
		}
		if err := crowdsale.AddAdmin(ctx, f.sale, f.cc); nil != err {
			return err
		}
		return crowdsale.Unpause(ctx, f.sale)
	})
	assert.Nil(t, err, "setup")

	err = vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.StartMinting(ctx, f.cc, f.sale)
	})
	assert.Equal(t, fault.ErrNotPaused, err, "sale running")
	assert.False(t, crowdsale.Paused(f.sale), "still running")
	assert.True(t, token.MintingFinished(f.token), "minting still finished")
}

func TestDataCentreRoundTrip(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	f := setup(t)
	dc := token.DataCentre(f.token)

	grant(t, f)
	err := vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.TransferDataCentreOwnership(ctx, f.cc, f.sale, f.wallet)
	})
	assert.Nil(t, err, "transfer data centre")
	assert.True(t, crowdsale.Paused(f.sale), "sale paused")
	assert.True(t, token.Paused(f.token), "token paused")
	assert.Equal(t, f.sale, authority.Owner(f.token), "token stays with the sale")
	assert.Equal(t, f.wallet, authority.Owner(dc), "data centre with the wallet")
	grantGone(t, f)

	err = vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.ReturnDataCentreOwnership(ctx, f.cc, f.sale)
	})
	assert.Equal(t, fault.ErrUnauthorised, err, "return without grant")

	// the founders move the data centre to the control centre
	data, err := vm.EncodePayload("transferOwnership", f.cc)
	assert.Nil(t, err, "encode")
	var id uint64
	err = vm.Execute(founders[0], func(ctx *vm.Context) error {
		id, err = multisig.SubmitTransaction(ctx, f.wallet, dc, nil, data)
		return err
	})
	assert.Nil(t, err, "submit")
	for _, founder := range founders[1:] {
		err = vm.Execute(founder, func(ctx *vm.Context) error {
			return multisig.ConfirmTransaction(ctx, f.wallet, id)
		})
		assert.Nil(t, err, "confirm")
	}
	assert.Equal(t, f.cc, authority.Owner(dc), "data centre with the control centre")

	grant(t, f)
	err = vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.ReturnDataCentreOwnership(ctx, f.cc, f.sale)
	})
	assert.Nil(t, err, "return data centre")
	assert.False(t, crowdsale.Paused(f.sale), "sale running")
	assert.False(t, token.Paused(f.token), "token running")
	assert.Equal(t, f.sale, authority.Owner(f.token), "token with the sale")
	assert.Equal(t, f.token, authority.Owner(dc), "data centre with the token")
	grantGone(t, f)
}

func TestReturnRequiresHeldDataCentre(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	f := setup(t)
	grant(t, f)

	err := vm.Execute(owner, func(ctx *vm.Context) error {
		return controlcentre.ReturnDataCentreOwnership(ctx, f.cc, f.sale)
	})
	assert.Equal(t, fault.ErrUnauthorised, err, "data centre not held")
	assert.True(t, authority.IsAdmin(f.sale, f.cc), "grant kept after failure")
}
