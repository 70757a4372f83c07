// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdsale

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// VaultKind - contract kind name of the escrow
const VaultKind = "refundvault"

// VaultState - escrow life cycle
type VaultState uint64

// escrow states
const (
	VaultActive VaultState = iota
	VaultRefunding
	VaultClosed
)

func (s VaultState) String() string {
	switch s {
	case VaultActive:
		return "Active"
	case VaultRefunding:
		return "Refunding"
	case VaultClosed:
		return "Closed"
	default:
		return "*Unknown*"
	}
}

// VaultRecord - stored state of an escrow
type VaultRecord struct {
	Wallet common.Address
	State  VaultState
}

// deployVault - escrow owned by the caller, released to wallet on success
func deployVault(ctx *vm.Context, wallet common.Address) (common.Address, error) {
	return ctx.Create(VaultKind, nil, func(c *vm.Context) error {
		authority.SetOwner(c.Trx(), c.Self(), c.Caller())
		vm.PutRecord(c.Trx(), c.Self(), &VaultRecord{
			Wallet: wallet,
			State:  VaultActive,
		})
		return nil
	})
}

// Vault - stored state of an escrow
func Vault(vault common.Address) (*VaultRecord, error) {
	if err := vm.RequireKind(vault, VaultKind); nil != err {
		return nil, err
	}
	r := &VaultRecord{}
	vm.GetRecord(vault, r)
	return r, nil
}

func depositKey(vault common.Address, investor common.Address) []byte {
	return append(vault.Bytes(), investor.Bytes()...)
}

// VaultDeposit - escrowed value of investor
func VaultDeposit(vault common.Address, investor common.Address) *uint256.Int {
	return vm.GetAmount(storage.Pool.Deposits, depositKey(vault, investor))
}

func loadVault(c *vm.Context) *VaultRecord {
	r := &VaultRecord{}
	vm.GetRecord(c.Self(), r)
	return r
}

// deposit - owner escrows the attached value for investor
func deposit(ctx *vm.Context, vault common.Address, investor common.Address, amount *uint256.Int) error {
	return ctx.CallContract(vault, VaultKind, amount, func(c *vm.Context) error {
		if err := authority.Require(c, authority.OwnerOnly); nil != err {
			return err
		}
		if VaultActive != loadVault(c).State {
			return fault.ErrVaultNotActive
		}
		total, err := vm.Add(VaultDeposit(c.Self(), investor), c.Value())
		if nil != err {
			return err
		}
		vm.PutAmount(c.Trx(), storage.Pool.Deposits, depositKey(c.Self(), investor), total)
		return nil
	})
}

// closeVault - owner releases every deposit to the wallet
func closeVault(ctx *vm.Context, vault common.Address) error {
	return ctx.CallContract(vault, VaultKind, nil, func(c *vm.Context) error {
		if err := authority.Require(c, authority.OwnerOnly); nil != err {
			return err
		}
		r := loadVault(c)
		if VaultActive != r.State {
			return fault.ErrVaultNotActive
		}
		r.State = VaultClosed
		vm.PutRecord(c.Trx(), c.Self(), r)

		balance := vm.BalanceOf(c.Self())
		c.Log().Infof("%s closed  released: %s  to: %s", c.Self().Hex(), balance.Dec(), r.Wallet.Hex())
		c.Emit("Closed", map[string]string{
			"wallet": r.Wallet.Hex(),
			"amount": balance.Dec(),
		})
		if balance.IsZero() {
			return nil
		}
		return c.Transfer(r.Wallet, balance)
	})
}

// enableRefunds - owner lets investors take their deposits back
func enableRefunds(ctx *vm.Context, vault common.Address) error {
	return ctx.CallContract(vault, VaultKind, nil, func(c *vm.Context) error {
		if err := authority.Require(c, authority.OwnerOnly); nil != err {
			return err
		}
		r := loadVault(c)
		if VaultActive != r.State {
			return fault.ErrVaultNotActive
		}
		r.State = VaultRefunding
		vm.PutRecord(c.Trx(), c.Self(), r)
		c.Log().Infof("%s refunding", c.Self().Hex())
		c.Emit("RefundsEnabled", nil)
		return nil
	})
}

// RefundFromVault - pay investor's deposit back, anyone may trigger it
func RefundFromVault(ctx *vm.Context, vault common.Address, investor common.Address) error {
	return ctx.CallContract(vault, VaultKind, nil, func(c *vm.Context) error {
		return refundVault(c, investor)
	})
}

func refundVault(c *vm.Context, investor common.Address) error {
	if VaultRefunding != loadVault(c).State {
		return fault.ErrVaultNotRefunding
	}
	amount := VaultDeposit(c.Self(), investor)
	if amount.IsZero() {
		return fault.ErrNoRefundAvailable
	}
	vm.PutAmount(c.Trx(), storage.Pool.Deposits, depositKey(c.Self(), investor), nil)
	c.Log().Infof("%s refunded: %s  amount: %s", c.Self().Hex(), investor.Hex(), amount.Dec())
	c.Emit("Refunded", map[string]string{
		"beneficiary": investor.Hex(),
		"amount":      amount.Dec(),
	})
	return c.Transfer(investor, amount)
}
