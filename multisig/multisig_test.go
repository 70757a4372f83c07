// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/multisig"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
	"github.com/ForceProtocol/TokenSaleContracts/vm/vmtest"
)

var (
	ownerA    = vmtest.Account("owner-a")
	ownerB    = vmtest.Account("owner-b")
	ownerC    = vmtest.Account("owner-c")
	payee     = vmtest.Account("payee")
	outsider  = vmtest.Account("outsider")
	allOwners = []common.Address{ownerA, ownerB, ownerC}
)

func TestMain(m *testing.M) {
	vmtest.Main(m)
}

func deploy(t *testing.T, required uint64, limit *uint256.Int) common.Address {
	var wallet common.Address
	err := vm.Execute(ownerA, func(ctx *vm.Context) error {
		var err error
		wallet, err = multisig.Deploy(ctx, allOwners, required, limit)
		return err
	})
	if nil != err {
		t.Fatalf("deploy error: %s", err)
	}
	return wallet
}

func submit(t *testing.T, sender common.Address, wallet common.Address, destination common.Address, value *uint256.Int, data []byte) uint64 {
	var id uint64
	err := vm.Execute(sender, func(ctx *vm.Context) error {
		var err error
		id, err = multisig.SubmitTransaction(ctx, wallet, destination, value, data)
		return err
	})
	if nil != err {
		t.Fatalf("submit error: %s", err)
	}
	return id
}

func confirm(sender common.Address, wallet common.Address, id uint64) error {
	return vm.Execute(sender, func(ctx *vm.Context) error {
		return multisig.ConfirmTransaction(ctx, wallet, id)
	})
}

func TestDeployValidation(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	tests := []struct {
		owners   []common.Address
		required uint64
		err      error
	}{
		{nil, 1, fault.ErrNoOwners},
		{allOwners, 0, fault.ErrInvalidRequirement},
		{allOwners, 4, fault.ErrInvalidRequirement},
		{[]common.Address{ownerA, {}}, 1, fault.ErrZeroAddress},
		{[]common.Address{ownerA, ownerB, ownerA}, 2, fault.ErrDuplicateOwner},
	}
	for i, item := range tests {
		err := vm.Execute(ownerA, func(ctx *vm.Context) error {
			_, err := multisig.Deploy(ctx, item.owners, item.required, nil)
			return err
		})
		assert.Equal(t, item.err, err, "%d: deploy", i)
	}

	wallet := deploy(t, 2, vmtest.Ether(1))
	r, err := multisig.Get(wallet)
	assert.Nil(t, err, "get")
	assert.Equal(t, allOwners, r.Owners, "owners")
	assert.Equal(t, uint64(2), r.Required, "required")
	assert.True(t, multisig.IsOwner(wallet, ownerC), "owner c")
	assert.False(t, multisig.IsOwner(wallet, outsider), "outsider")
}

func TestTwoOfThree(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 2, uint256.NewInt(0))
	vmtest.Fund(t, vmtest.Ether(5), wallet)

	id := submit(t, ownerA, wallet, payee, vmtest.Ether(3), nil)
	assert.Equal(t, uint64(1), multisig.ConfirmationCount(wallet, id), "submitter confirmed")
	assert.True(t, vm.BalanceOf(payee).IsZero(), "not yet paid")

	err := confirm(ownerB, wallet, id)
	assert.Nil(t, err, "second confirmation")
	assert.Equal(t, vmtest.Ether(3), vm.BalanceOf(payee), "paid")

	tx, err := multisig.GetTransaction(wallet, id)
	assert.Nil(t, err, "transaction")
	assert.True(t, tx.Executed, "executed")

	err = confirm(ownerC, wallet, id)
	assert.Equal(t, fault.ErrAlreadyExecuted, err, "third confirmation")
	assert.Equal(t, []common.Address{ownerA, ownerB}, multisig.Confirmations(wallet, id), "confirmations")
}

func TestConfirmationRules(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 3, uint256.NewInt(0))
	id := submit(t, ownerA, wallet, payee, vmtest.Ether(1), nil)

	assert.Equal(t, fault.ErrAlreadyConfirmed, confirm(ownerA, wallet, id), "confirm twice")
	assert.Equal(t, fault.ErrUnauthorised, confirm(outsider, wallet, id), "outsider")
	assert.Equal(t, fault.ErrTransactionNotFound, confirm(ownerB, wallet, id+1), "unknown id")

	err := vm.Execute(ownerB, func(ctx *vm.Context) error {
		return multisig.RevokeConfirmation(ctx, wallet, id)
	})
	assert.Equal(t, fault.ErrNotConfirmed, err, "revoke unconfirmed")

	err = vm.Execute(ownerA, func(ctx *vm.Context) error {
		return multisig.RevokeConfirmation(ctx, wallet, id)
	})
	assert.Nil(t, err, "revoke")
	assert.Equal(t, uint64(0), multisig.ConfirmationCount(wallet, id), "no confirmations")

	err = vm.Execute(outsider, func(ctx *vm.Context) error {
		_, err := multisig.SubmitTransaction(ctx, wallet, payee, nil, nil)
		return err
	})
	assert.Equal(t, fault.ErrUnauthorised, err, "outsider submit")
}

func TestExplicitExecute(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 2, vmtest.Ether(1))
	vmtest.Fund(t, vmtest.Ether(5), wallet)

	id := submit(t, ownerA, wallet, payee, vmtest.Ether(2), nil)

	err := vm.Execute(ownerA, func(ctx *vm.Context) error {
		return multisig.ExecuteTransaction(ctx, wallet, id)
	})
	assert.Equal(t, fault.ErrDailyLimitExceeded, err, "over limit")

	data, err := vm.EncodePayload("changeDailyLimit", vmtest.Ether(9))
	assert.Nil(t, err, "encode")
	id = submit(t, ownerA, wallet, wallet, nil, data)

	err = vm.Execute(ownerA, func(ctx *vm.Context) error {
		return multisig.ExecuteTransaction(ctx, wallet, id)
	})
	assert.Equal(t, fault.ErrInsufficientConfirmations, err, "payload needs confirmations")

	err = vm.Execute(ownerB, func(ctx *vm.Context) error {
		return multisig.ExecuteTransaction(ctx, wallet, id)
	})
	assert.Equal(t, fault.ErrNotConfirmed, err, "executor must have confirmed")
}

func TestDailyLimit(t *testing.T) {
	clock, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 2, vmtest.Ether(1))
	vmtest.Fund(t, vmtest.Ether(5), wallet)

	half := new(uint256.Int).Div(vmtest.Ether(1), uint256.NewInt(2))
	more := new(uint256.Int).Add(half, uint256.NewInt(1))

	first := submit(t, ownerA, wallet, payee, half, nil)
	assert.Equal(t, half, vm.BalanceOf(payee), "fast path")
	assert.Equal(t, half, multisig.CalcMaxWithdraw(wallet, clock.Now()), "remaining today")

	second := submit(t, ownerB, wallet, payee, more, nil)
	assert.Equal(t, half, vm.BalanceOf(payee), "over the remaining limit")

	clock.Advance(24*time.Hour + time.Second)
	assert.Equal(t, vmtest.Ether(1), multisig.CalcMaxWithdraw(wallet, clock.Now()), "new window")

	err := vm.Execute(ownerB, func(ctx *vm.Context) error {
		return multisig.ExecuteTransaction(ctx, wallet, second)
	})
	assert.Nil(t, err, "execute in new window")
	assert.Equal(t, new(uint256.Int).Add(half, more), vm.BalanceOf(payee), "paid twice")

	assert.Equal(t, uint64(2), multisig.TransactionCount(wallet, false, true), "executed count")
	ids, err := multisig.TransactionIDs(wallet, 0, 10, false, true)
	assert.Nil(t, err, "ids")
	assert.Equal(t, []uint64{first, second}, ids, "executed ids")
}

func TestFailedExecutionKeepsConfirmations(t *testing.T) {
	clock, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 1, vmtest.Ether(1))

	// the wallet holds nothing yet so the transfer fails
	id := submit(t, ownerA, wallet, payee, vmtest.Ether(1), nil)
	tx, err := multisig.GetTransaction(wallet, id)
	assert.Nil(t, err, "transaction")
	assert.False(t, tx.Executed, "not executed")
	assert.True(t, tx.Failed, "failed")
	assert.Equal(t, uint64(1), multisig.ConfirmationCount(wallet, id), "confirmation stands")
	assert.Equal(t, vmtest.Ether(1), multisig.CalcMaxWithdraw(wallet, clock.Now()), "limit refunded")

	vmtest.Fund(t, vmtest.Ether(1), wallet)
	err = vm.Execute(ownerA, func(ctx *vm.Context) error {
		return multisig.ExecuteTransaction(ctx, wallet, id)
	})
	assert.Nil(t, err, "retry")

	tx, err = multisig.GetTransaction(wallet, id)
	assert.Nil(t, err, "transaction")
	assert.True(t, tx.Executed, "executed")
	assert.False(t, tx.Failed, "no longer failed")
	assert.Equal(t, vmtest.Ether(1), vm.BalanceOf(payee), "paid")
}

func TestChangeDailyLimit(t *testing.T) {
	clock, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 2, vmtest.Ether(1))

	err := vm.Execute(ownerA, func(ctx *vm.Context) error {
		return multisig.ChangeDailyLimit(ctx, wallet, vmtest.Ether(100))
	})
	assert.Equal(t, fault.ErrUnauthorised, err, "direct change")

	data, err := vm.EncodePayload("changeDailyLimit", vmtest.Ether(3))
	assert.Nil(t, err, "encode")
	id := submit(t, ownerA, wallet, wallet, nil, data)
	assert.Nil(t, confirm(ownerC, wallet, id), "confirm")

	r, err := multisig.Get(wallet)
	assert.Nil(t, err, "get")
	assert.Equal(t, vmtest.Ether(3), r.DailyLimit, "limit")
	assert.Equal(t, vmtest.Ether(3), multisig.CalcMaxWithdraw(wallet, clock.Now()), "max withdraw")
}

func TestClearDailyLimit(t *testing.T) {
	clock, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 2, vmtest.Ether(1))

	err := vm.Execute(wallet, func(ctx *vm.Context) error {
		return multisig.ChangeDailyLimit(ctx, wallet, nil)
	})
	assert.Nil(t, err, "missing limit")

	r, err := multisig.Get(wallet)
	assert.Nil(t, err, "get")
	assert.True(t, r.DailyLimit.IsZero(), "limit cleared")
	assert.True(t, multisig.CalcMaxWithdraw(wallet, clock.Now()).IsZero(), "no fast path")
}

func TestWalletOwnsToken(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 2, uint256.NewInt(0))

	var tok common.Address
	err := vm.Execute(ownerA, func(ctx *vm.Context) error {
		var err error
		tok, err = token.Deploy(ctx, common.Address{}, "Force", "FOR", 18)
		if nil != err {
			return err
		}
		return token.TransferOwnership(ctx, tok, wallet)
	})
	assert.Nil(t, err, "token")
	assert.Equal(t, wallet, authority.Owner(tok), "wallet owns token")

	data, err := vm.EncodePayload("mint", payee, vmtest.Tokens(42))
	assert.Nil(t, err, "encode")
	id := submit(t, ownerB, wallet, tok, nil, data)
	assert.True(t, token.TotalSupply(tok).IsZero(), "needs two confirmations")

	assert.Nil(t, confirm(ownerC, wallet, id), "confirm")
	assert.Equal(t, vmtest.Tokens(42), token.BalanceOf(tok, payee), "minted through wallet")
	vmtest.Conserved(t, token.DataCentre(tok))
}

func TestSubmitThroughPayload(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 1, uint256.NewInt(0))
	vmtest.Fund(t, vmtest.Ether(2), wallet)

	data, err := vm.EncodePayload("submitTransaction", payee, vmtest.Ether(1), []byte{})
	assert.Nil(t, err, "encode")
	assert.Nil(t, vm.Submit(ownerA, wallet, nil, data), "submit payload")
	assert.Equal(t, vmtest.Ether(1), vm.BalanceOf(payee), "executed with one confirmation")
}

func TestFailedFastPathRefundsLimit(t *testing.T) {
	clock, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 2, vmtest.Ether(1))

	id := submit(t, ownerA, wallet, payee, vmtest.Ether(1), nil)
	tx, err := multisig.GetTransaction(wallet, id)
	assert.Nil(t, err, "transaction")
	assert.True(t, tx.Failed, "failed")
	assert.Equal(t, vmtest.Ether(1), multisig.CalcMaxWithdraw(wallet, clock.Now()), "spent today refunded")

	r, err := multisig.Get(wallet)
	assert.Nil(t, err, "get")
	assert.Equal(t, uint64(vmtest.Genesis.Unix()), r.LastDay, "window opened")
}

func TestWalletEvents(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	wallet := deploy(t, 2, uint256.NewInt(0))

	l := vmtest.Listen()
	defer l.Close()

	vmtest.Fund(t, vmtest.Ether(1), ownerA)
	err := vm.Execute(ownerA, func(ctx *vm.Context) error {
		return ctx.Transfer(wallet, vmtest.Ether(1))
	})
	assert.Nil(t, err, "deposit")

	id := submit(t, ownerA, wallet, payee, vmtest.Ether(3), nil)
	assert.Nil(t, confirm(ownerB, wallet, id), "confirm")

	events := l.Drain()
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Deposit", "Submission", "Confirmation", "Confirmation", "ExecutionFailure"}, names, "events")
	assert.Equal(t, "0", events[1].Fields["transactionId"], "submission id")
	assert.Equal(t, ownerB.Hex(), events[3].Fields["owner"], "second owner")
	assert.Equal(t, wallet, events[4].Contract, "raised by wallet")
}
