// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package controller - admin-gated governance of a token and its data centre
//
// A controller owns the token and the data centre and lets its owner
// and admins mint, pause and move ledger ownership.  It is retired in
// two phases: Kill hands the ledger to the caller and records a
// successor, then the caller gives the ledger to the successor.  After
// Kill nothing on the old controller works.
package controller

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/datacentre"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// Kind - contract kind name
const Kind = "controller"

// Record - stored state of a controller
type Record struct {
	Token      common.Address
	DataCentre common.Address
	Killed     bool
	Successor  common.Address
}

// Deploy - new paused controller owned by the deployer
//
// ledger ownership is handed over separately
func Deploy(ctx *vm.Context, tok common.Address, dc common.Address) (common.Address, error) {
	if err := vm.RequireKind(tok, token.Kind); nil != err {
		return common.Address{}, err
	}
	if err := vm.RequireKind(dc, datacentre.Kind); nil != err {
		return common.Address{}, err
	}
	return ctx.Create(Kind, nil, func(c *vm.Context) error {
		authority.SetOwner(c.Trx(), c.Self(), c.Caller())
		authority.SetPaused(c.Trx(), c.Self(), true)
		vm.PutRecord(c.Trx(), c.Self(), &Record{
			Token:      tok,
			DataCentre: dc,
		})
		return nil
	})
}

// Get - stored state of a controller
func Get(ctrl common.Address) (*Record, error) {
	if err := vm.RequireKind(ctrl, Kind); nil != err {
		return nil, err
	}
	r := &Record{}
	vm.GetRecord(ctrl, r)
	return r, nil
}

// Token - token governed by a controller
func Token(ctrl common.Address) common.Address {
	r := &Record{}
	vm.GetRecord(ctrl, r)
	return r.Token
}

// Paused - running state of a controller
func Paused(ctrl common.Address) bool {
	return authority.Paused(ctrl)
}

// Killed - true once the controller has been retired
func Killed(ctrl common.Address) bool {
	r := &Record{}
	vm.GetRecord(ctrl, r)
	return r.Killed
}

// Admins - current admin set
func Admins(ctrl common.Address) ([]common.Address, error) {
	return authority.Admins(ctrl)
}

// load the record and check the controller is still in service
func active(c *vm.Context) (*Record, error) {
	r := &Record{}
	vm.GetRecord(c.Self(), r)
	if r.Killed {
		return nil, fault.ErrControllerKilled
	}
	return r, nil
}

// load for an admin operation
func guard(c *vm.Context) (*Record, error) {
	r, err := active(c)
	if nil != err {
		return nil, err
	}
	if err := authority.Require(c, authority.AdminOrOwner); nil != err {
		return nil, err
	}
	return r, nil
}

// operations that act on the ledger need the controller to own it
func requireLedger(c *vm.Context, r *Record) error {
	if authority.Owner(r.Token) != c.Self() {
		return fault.ErrNotLedgerOwner
	}
	return nil
}
