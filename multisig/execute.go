// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// SubmitTransaction - propose a call, confirm it and execute it if possible
func SubmitTransaction(ctx *vm.Context, wallet common.Address, destination common.Address, value *uint256.Int, data []byte) (uint64, error) {
	id := uint64(0)
	err := ctx.CallContract(wallet, Kind, nil, func(c *vm.Context) error {
		var err error
		id, err = submit(c, destination, value, data)
		return err
	})
	return id, err
}

// ConfirmTransaction - add the caller's confirmation and execute if possible
func ConfirmTransaction(ctx *vm.Context, wallet common.Address, id uint64) error {
	return ctx.CallContract(wallet, Kind, nil, func(c *vm.Context) error {
		return confirm(c, id)
	})
}

// RevokeConfirmation - withdraw the caller's confirmation of a pending transaction
func RevokeConfirmation(ctx *vm.Context, wallet common.Address, id uint64) error {
	return ctx.CallContract(wallet, Kind, nil, func(c *vm.Context) error {
		return revoke(c, id)
	})
}

// ExecuteTransaction - retry a confirmed transaction
func ExecuteTransaction(ctx *vm.Context, wallet common.Address, id uint64) error {
	return ctx.CallContract(wallet, Kind, nil, func(c *vm.Context) error {
		return execute(c, id)
	})
}

// ChangeDailyLimit - only the wallet itself, through a confirmed transaction
func ChangeDailyLimit(ctx *vm.Context, wallet common.Address, limit *uint256.Int) error {
	return ctx.CallContract(wallet, Kind, nil, func(c *vm.Context) error {
		return changeDailyLimit(c, limit)
	})
}

func requireOwner(c *vm.Context) error {
	if !IsOwner(c.Self(), c.Caller()) {
		return fault.ErrUnauthorised
	}
	return nil
}

func submit(c *vm.Context, destination common.Address, value *uint256.Int, data []byte) (uint64, error) {
	if err := requireOwner(c); nil != err {
		return 0, err
	}
	if (common.Address{}) == destination {
		return 0, fault.ErrZeroAddress
	}
	if nil == value {
		value = uint256.NewInt(0)
	}

	r := get(c.Self())
	id := r.TransactionCount
	r.TransactionCount += 1
	vm.PutRecord(c.Trx(), c.Self(), r)

	putTransaction(c.Trx(), c.Self(), id, &Transaction{
		Destination: destination,
		Value:       value,
		Data:        data,
	})
	c.Log().Infof("submission: %d  destination: %s  value: %s", id, destination.Hex(), value.Dec())
	c.Emit("Submission", transactionFields(id, nil))

	return id, confirm(c, id)
}

func confirm(c *vm.Context, id uint64) error {
	if err := requireOwner(c); nil != err {
		return err
	}
	tx, err := GetTransaction(c.Self(), id)
	if nil != err {
		return err
	}
	if tx.Executed {
		return fault.ErrAlreadyExecuted
	}
	if IsConfirmedBy(c.Self(), id, c.Caller()) {
		return fault.ErrAlreadyConfirmed
	}
	c.Trx().Put(storage.Pool.Confirmations, confirmationKey(c.Self(), id, c.Caller()), []byte{1})
	c.Log().Infof("confirmation: %d  owner: %s", id, c.Caller().Hex())
	c.Emit("Confirmation", transactionFields(id, map[string]string{"owner": c.Caller().Hex()}))

	// not being ready yet is not an error here
	err = attempt(c, id)
	if fault.ErrInsufficientConfirmations == err || fault.ErrDailyLimitExceeded == err {
		return nil
	}
	return err
}

func revoke(c *vm.Context, id uint64) error {
	if err := requireOwner(c); nil != err {
		return err
	}
	tx, err := GetTransaction(c.Self(), id)
	if nil != err {
		return err
	}
	if !IsConfirmedBy(c.Self(), id, c.Caller()) {
		return fault.ErrNotConfirmed
	}
	if tx.Executed {
		return fault.ErrAlreadyExecuted
	}
	c.Trx().Delete(storage.Pool.Confirmations, confirmationKey(c.Self(), id, c.Caller()))
	c.Log().Infof("revocation: %d  owner: %s", id, c.Caller().Hex())
	c.Emit("Revocation", transactionFields(id, map[string]string{"owner": c.Caller().Hex()}))
	return nil
}

func execute(c *vm.Context, id uint64) error {
	if err := requireOwner(c); nil != err {
		return err
	}
	tx, err := GetTransaction(c.Self(), id)
	if nil != err {
		return err
	}
	if !IsConfirmedBy(c.Self(), id, c.Caller()) {
		return fault.ErrNotConfirmed
	}
	if tx.Executed {
		return fault.ErrAlreadyExecuted
	}
	return attempt(c, id)
}

// attempt - run id if it is confirmed or fits under the daily limit
//
// a failing call is rolled back on its own and the transaction is
// left unexecuted and marked failed; that is not an error of attempt
func attempt(c *vm.Context, id uint64) error {
	tx, err := GetTransaction(c.Self(), id)
	if nil != err {
		return err
	}

	confirmed := IsConfirmed(c.Self(), id)
	if !confirmed {
		if 0 != len(tx.Data) {
			return fault.ErrInsufficientConfirmations
		}
		if !spend(c, tx.Value) {
			return fault.ErrDailyLimitExceeded
		}
	}

	tx.Executed = true
	putTransaction(c.Trx(), c.Self(), id, tx)

	err = vm.Invoke(c, tx.Destination, tx.Value, tx.Data)
	if nil != err {
		tx.Executed = false
		tx.Failed = true
		putTransaction(c.Trx(), c.Self(), id, tx)
		if !confirmed {
			refund(c, tx.Value)
		}
		c.Log().Warnf("execution failure: %d  destination: %s  error: %s", id, tx.Destination.Hex(), err)
		c.Emit("ExecutionFailure", transactionFields(id, map[string]string{"error": err.Error()}))
		return nil
	}

	tx.Failed = false
	putTransaction(c.Trx(), c.Self(), id, tx)
	c.Log().Infof("execution: %d  destination: %s  value: %s", id, tx.Destination.Hex(), tx.Value.Dec())
	c.Emit("Execution", transactionFields(id, nil))
	return nil
}

// spend - charge amount against today's limit, false if it does not fit
func spend(c *vm.Context, amount *uint256.Int) bool {
	r := get(c.Self())
	now := c.Now()
	if windowExpired(r, now) {
		r.LastDay = uint64(now.Unix())
		r.SpentToday = uint256.NewInt(0)
	}
	total, overflow := new(uint256.Int).AddOverflow(r.SpentToday, amount)
	if overflow || total.Gt(r.DailyLimit) {
		return false
	}
	r.SpentToday = total
	vm.PutRecord(c.Trx(), c.Self(), r)
	return true
}

func refund(c *vm.Context, amount *uint256.Int) {
	r := get(c.Self())
	if r.SpentToday.Lt(amount) {
		r.SpentToday = uint256.NewInt(0)
	} else {
		r.SpentToday = new(uint256.Int).Sub(r.SpentToday, amount)
	}
	vm.PutRecord(c.Trx(), c.Self(), r)
}

func changeDailyLimit(c *vm.Context, limit *uint256.Int) error {
	if err := authority.Require(c, authority.SelfOnly); nil != err {
		return err
	}
	if nil == limit {
		limit = uint256.NewInt(0)
	}
	r := get(c.Self())
	r.DailyLimit = limit
	vm.PutRecord(c.Trx(), c.Self(), r)
	c.Log().Infof("daily limit: %s", limit.Dec())
	c.Emit("DailyLimitChange", map[string]string{"dailyLimit": limit.Dec()})
	return nil
}

func transactionFields(id uint64, fields map[string]string) map[string]string {
	if nil == fields {
		fields = make(map[string]string, 1)
	}
	fields["transactionId"] = strconv.FormatUint(id, 10)
	return fields
}
