// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/datacentre"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
	"github.com/ForceProtocol/TokenSaleContracts/vm/vmtest"
)

var (
	owner = vmtest.Account("owner")
	alice = vmtest.Account("alice")
	bob   = vmtest.Account("bob")
)

func TestMain(m *testing.M) {
	vmtest.Main(m)
}

func deploy(t *testing.T) common.Address {
	var tok common.Address
	err := vm.Execute(owner, func(ctx *vm.Context) error {
		var err error
		tok, err = token.Deploy(ctx, common.Address{}, "Force", "FOR", 18)
		return err
	})
	if nil != err {
		t.Fatalf("deploy error: %s", err)
	}
	return tok
}

func TestDeployWithPrivateDataCentre(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	tok := deploy(t)
	dc := token.DataCentre(tok)

	assert.Equal(t, token.Kind, vm.KindOf(tok), "token kind")
	assert.Equal(t, datacentre.Kind, vm.KindOf(dc), "data centre kind")
	assert.Equal(t, owner, authority.Owner(tok), "token owner")
	assert.Equal(t, tok, authority.Owner(dc), "data centre owner")
	assert.True(t, token.Paused(tok), "starts paused")
	assert.False(t, token.MintingFinished(tok), "minting open")

	r, err := token.Get(tok)
	assert.Nil(t, err, "get")
	assert.Equal(t, "FOR", r.Symbol, "symbol")
	assert.Equal(t, uint64(18), r.Decimals, "decimals")
}

func TestDeployRejectsWrongDataCentre(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	tok := deploy(t)
	err := vm.Execute(owner, func(ctx *vm.Context) error {
		_, err := token.Deploy(ctx, tok, "Bad", "BAD", 18)
		return err
	})
	assert.Equal(t, fault.ErrWrongContractKind, err, "token is not a data centre")
}

func TestMintAndTransfer(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	tok := deploy(t)

	err := vm.Execute(owner, func(ctx *vm.Context) error {
		return token.Mint(ctx, tok, alice, vmtest.Tokens(100))
	})
	assert.Nil(t, err, "mint")

	err = vm.Execute(alice, func(ctx *vm.Context) error {
		return token.Transfer(ctx, tok, bob, vmtest.Tokens(10))
	})
	assert.Equal(t, fault.ErrContractPaused, err, "transfer while paused")

	err = vm.Execute(owner, func(ctx *vm.Context) error {
		return token.Unpause(ctx, tok)
	})
	assert.Nil(t, err, "unpause")

	err = vm.Execute(alice, func(ctx *vm.Context) error {
		return token.Transfer(ctx, tok, bob, vmtest.Tokens(10))
	})
	assert.Nil(t, err, "transfer")

	assert.Equal(t, vmtest.Tokens(90), token.BalanceOf(tok, alice), "alice balance")
	assert.Equal(t, vmtest.Tokens(10), token.BalanceOf(tok, bob), "bob balance")
	assert.Equal(t, vmtest.Tokens(100), token.TotalSupply(tok), "total supply")
	vmtest.Conserved(t, token.DataCentre(tok))
}

func TestTransferRejections(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	tok := deploy(t)
	err := vm.Execute(owner, func(ctx *vm.Context) error {
		if err := token.Mint(ctx, tok, alice, vmtest.Tokens(5)); nil != err {
			return err
		}
		return token.Unpause(ctx, tok)
	})
	assert.Nil(t, err, "setup")

	tests := []struct {
		to     common.Address
		amount *uint256.Int
		err    error
	}{
		{common.Address{}, vmtest.Tokens(1), fault.ErrZeroAddress},
		{alice, vmtest.Tokens(1), fault.ErrSelfTransfer},
		{bob, uint256.NewInt(0), fault.ErrInvalidAmount},
		{bob, vmtest.Tokens(6), fault.ErrInsufficientBalance},
	}
	for i, item := range tests {
		err := vm.Execute(alice, func(ctx *vm.Context) error {
			return token.Transfer(ctx, tok, item.to, item.amount)
		})
		assert.Equal(t, item.err, err, "%d: transfer", i)
	}
	assert.Equal(t, vmtest.Tokens(5), token.BalanceOf(tok, alice), "balance unchanged")
	vmtest.Conserved(t, token.DataCentre(tok))
}

func TestApproveAndTransferFrom(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	tok := deploy(t)
	err := vm.Execute(owner, func(ctx *vm.Context) error {
		if err := token.Mint(ctx, tok, alice, vmtest.Tokens(50)); nil != err {
			return err
		}
		return token.Unpause(ctx, tok)
	})
	assert.Nil(t, err, "setup")

	err = vm.Execute(alice, func(ctx *vm.Context) error {
		return token.Approve(ctx, tok, bob, vmtest.Tokens(20))
	})
	assert.Nil(t, err, "approve")

	err = vm.Execute(bob, func(ctx *vm.Context) error {
		return token.TransferFrom(ctx, tok, alice, bob, vmtest.Tokens(21))
	})
	assert.Equal(t, fault.ErrInsufficientAllowance, err, "over allowance")

	err = vm.Execute(bob, func(ctx *vm.Context) error {
		return token.TransferFrom(ctx, tok, alice, bob, vmtest.Tokens(15))
	})
	assert.Nil(t, err, "transfer from")

	assert.Equal(t, vmtest.Tokens(5), token.Allowance(tok, alice, bob), "remaining allowance")
	assert.Equal(t, vmtest.Tokens(35), token.BalanceOf(tok, alice), "alice balance")
	assert.Equal(t, vmtest.Tokens(15), token.BalanceOf(tok, bob), "bob balance")
	vmtest.Conserved(t, token.DataCentre(tok))
}

func TestMintingControl(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	tok := deploy(t)

	err := vm.Execute(alice, func(ctx *vm.Context) error {
		return token.Mint(ctx, tok, alice, vmtest.Tokens(1))
	})
	assert.Equal(t, fault.ErrUnauthorised, err, "non owner mint")

	err = vm.Execute(owner, func(ctx *vm.Context) error {
		return token.FinishMinting(ctx, tok)
	})
	assert.Nil(t, err, "finish minting")
	assert.True(t, token.MintingFinished(tok), "finished")

	err = vm.Execute(owner, func(ctx *vm.Context) error {
		return token.Mint(ctx, tok, alice, vmtest.Tokens(1))
	})
	assert.Equal(t, fault.ErrMintingFinished, err, "mint after finish")

	err = vm.Execute(owner, func(ctx *vm.Context) error {
		if err := token.StartMinting(ctx, tok); nil != err {
			return err
		}
		return token.Mint(ctx, tok, alice, vmtest.Tokens(1))
	})
	assert.Nil(t, err, "mint after restart")
	assert.Equal(t, vmtest.Tokens(1), token.TotalSupply(tok), "supply")
}

func TestMintOverflow(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	tok := deploy(t)
	max := new(uint256.Int).SetAllOne()

	err := vm.Execute(owner, func(ctx *vm.Context) error {
		if err := token.Mint(ctx, tok, alice, max); nil != err {
			return err
		}
		return token.Mint(ctx, tok, bob, uint256.NewInt(1))
	})
	assert.Equal(t, fault.ErrOverflow, err, "overflow")
	assert.True(t, token.TotalSupply(tok).IsZero(), "whole call aborted")
}

func TestDataCentreWriteRule(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	tok := deploy(t)
	dc := token.DataCentre(tok)

	err := vm.Execute(owner, func(ctx *vm.Context) error {
		return datacentre.SetBalance(ctx, dc, owner, vmtest.Tokens(1))
	})
	assert.Equal(t, fault.ErrUnauthorised, err, "token owner cannot write directly")

	err = vm.Execute(owner, func(ctx *vm.Context) error {
		return token.TransferDataCentreOwnership(ctx, tok, owner)
	})
	assert.Nil(t, err, "hand data centre to owner")
	assert.Equal(t, owner, authority.Owner(dc), "data centre owner")

	err = vm.Execute(owner, func(ctx *vm.Context) error {
		return token.Mint(ctx, tok, alice, vmtest.Tokens(1))
	})
	assert.Nil(t, err, "bound token may write")
	assert.Equal(t, tok, datacentre.Token(dc), "private data centre bound to its token")
}

func TestPayloadDispatch(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	tok := deploy(t)

	data, err := vm.EncodePayload("mint", alice, vmtest.Tokens(7))
	assert.Nil(t, err, "encode")
	err = vm.Submit(owner, tok, nil, data)
	assert.Nil(t, err, "submit mint")
	assert.Equal(t, vmtest.Tokens(7), token.BalanceOf(tok, alice), "minted")

	data, err = vm.EncodePayload("burn", alice)
	assert.Nil(t, err, "encode")
	err = vm.Submit(owner, tok, nil, data)
	assert.Equal(t, fault.ErrInvalidMethod, err, "unknown method")
}
