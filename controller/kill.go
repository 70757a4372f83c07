// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package controller

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/datacentre"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// Kill - first phase of a migration to successor
//
// the caller receives token and data centre ownership, the native
// balance goes to the successor and the controller stops working.
// The caller completes the migration by handing the ledger to the
// successor and unpausing it.
func Kill(ctx *vm.Context, ctrl common.Address, successor common.Address) error {
	return ctx.CallContract(ctrl, Kind, nil, func(c *vm.Context) error {
		return kill(c, successor)
	})
}

func kill(c *vm.Context, successor common.Address) error {
	r, err := guard(c)
	if nil != err {
		return err
	}
	if err := authority.WhenPaused(c.Self()); nil != err {
		return err
	}
	if err := checkSuccessor(c, r, successor); nil != err {
		return err
	}

	if err := token.TransferOwnership(c, r.Token, c.Caller()); nil != err {
		return err
	}
	if err := datacentre.TransferOwnership(c, r.DataCentre, c.Caller()); nil != err {
		return err
	}

	balance := vm.BalanceOf(c.Self())
	if !balance.IsZero() {
		if err := c.Transfer(successor, balance); nil != err {
			return err
		}
	}

	r.Killed = true
	r.Successor = successor
	vm.PutRecord(c.Trx(), c.Self(), r)

	c.Log().Infof("%s killed by: %s  successor: %s  moved: %s", c.Self().Hex(), c.Caller().Hex(), successor.Hex(), balance.Dec())
	c.Emit("Killed", map[string]string{
		"successor": successor.Hex(),
		"moved":     balance.Dec(),
	})
	return nil
}

func checkSuccessor(c *vm.Context, r *Record, successor common.Address) error {
	if successor == c.Self() {
		return fault.ErrSuccessorMismatch
	}
	if err := vm.RequireKind(successor, Kind); nil != err {
		return err
	}
	next := &Record{}
	vm.GetRecord(successor, next)
	if next.Killed || next.Token != r.Token || next.DataCentre != r.DataCentre {
		return fault.ErrSuccessorMismatch
	}
	return nil
}

// Successor - controller recorded by Kill, zero while in service
func Successor(ctrl common.Address) common.Address {
	r := &Record{}
	vm.GetRecord(ctrl, r)
	return r.Successor
}
