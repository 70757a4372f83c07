// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package multisig - wallet executing transactions after M of N confirmations
//
// Plain value transfers within the daily limit need only one owner.
// A transaction whose call fails stays unexecuted with its
// confirmations intact and can be executed again later.
package multisig

import (
	"encoding/binary"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/membership"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// Kind - contract kind name
const Kind = "multisig"

// length of a daily limit window
const day = 24 * time.Hour

// Record - stored state of a wallet
type Record struct {
	Owners           []common.Address
	Required         uint64
	DailyLimit       *uint256.Int
	LastDay          uint64 // unix seconds
	SpentToday       *uint256.Int
	TransactionCount uint64
}

// Transaction - a proposed call
type Transaction struct {
	Destination common.Address
	Value       *uint256.Int
	Data        []byte
	Executed    bool
	Failed      bool
}

// Deploy - new wallet; owners are fixed from here on
func Deploy(ctx *vm.Context, owners []common.Address, required uint64, dailyLimit *uint256.Int) (common.Address, error) {
	if 0 == len(owners) {
		return common.Address{}, fault.ErrNoOwners
	}
	if 0 == required || required > uint64(len(owners)) {
		return common.Address{}, fault.ErrInvalidRequirement
	}
	if nil == dailyLimit {
		dailyLimit = uint256.NewInt(0)
	}
	return ctx.Create(Kind, nil, func(c *vm.Context) error {
		set := membership.New(c.Self(), membership.Owners)
		for _, owner := range owners {
			if (common.Address{}) == owner {
				return fault.ErrZeroAddress
			}
			if !membership.Add(c.Trx(), set, owner) {
				return fault.ErrDuplicateOwner
			}
		}
		// the wallet governs itself
		authority.SetOwner(c.Trx(), c.Self(), c.Self())
		vm.PutRecord(c.Trx(), c.Self(), &Record{
			Owners:     owners,
			Required:   required,
			DailyLimit: dailyLimit,
			SpentToday: uint256.NewInt(0),
		})
		c.Log().Infof("owners: %d  required: %d  daily limit: %s", len(owners), required, dailyLimit.Dec())
		return nil
	})
}

// Get - stored state of a wallet
func Get(wallet common.Address) (*Record, error) {
	if err := vm.RequireKind(wallet, Kind); nil != err {
		return nil, err
	}
	return get(wallet), nil
}

func get(wallet common.Address) *Record {
	r := &Record{}
	vm.GetRecord(wallet, r)
	if nil == r.DailyLimit {
		r.DailyLimit = uint256.NewInt(0)
	}
	if nil == r.SpentToday {
		r.SpentToday = uint256.NewInt(0)
	}
	return r
}

// IsOwner - membership of the owner set
func IsOwner(wallet common.Address, principal common.Address) bool {
	return membership.Has(membership.New(wallet, membership.Owners), principal)
}

func transactionKey(wallet common.Address, id uint64) []byte {
	k := make([]byte, common.AddressLength+8)
	copy(k, wallet.Bytes())
	binary.BigEndian.PutUint64(k[common.AddressLength:], id)
	return k
}

func confirmationKey(wallet common.Address, id uint64, owner common.Address) []byte {
	return append(transactionKey(wallet, id), owner.Bytes()...)
}

// GetTransaction - a stored transaction
func GetTransaction(wallet common.Address, id uint64) (*Transaction, error) {
	tx := &Transaction{}
	if !vm.GetRecordFrom(storage.Pool.WalletTransactions, transactionKey(wallet, id), tx) {
		return nil, fault.ErrTransactionNotFound
	}
	if nil == tx.Value {
		tx.Value = uint256.NewInt(0)
	}
	return tx, nil
}

func putTransaction(trx storage.Transaction, wallet common.Address, id uint64, tx *Transaction) {
	vm.PutRecordTo(trx, storage.Pool.WalletTransactions, transactionKey(wallet, id), tx)
}

// IsConfirmedBy - owner has confirmed id
func IsConfirmedBy(wallet common.Address, id uint64, owner common.Address) bool {
	return storage.Pool.Confirmations.Has(confirmationKey(wallet, id, owner))
}

// Confirmations - owners that confirmed id, in owner order
func Confirmations(wallet common.Address, id uint64) []common.Address {
	confirmed := make([]common.Address, 0, 4)
	for _, owner := range get(wallet).Owners {
		if IsConfirmedBy(wallet, id, owner) {
			confirmed = append(confirmed, owner)
		}
	}
	return confirmed
}

// ConfirmationCount - number of owners that confirmed id
func ConfirmationCount(wallet common.Address, id uint64) uint64 {
	return uint64(len(Confirmations(wallet, id)))
}

// IsConfirmed - id has the required number of confirmations
func IsConfirmed(wallet common.Address, id uint64) bool {
	return ConfirmationCount(wallet, id) >= get(wallet).Required
}

// TransactionCount - transactions matching the filter
func TransactionCount(wallet common.Address, pending bool, executed bool) uint64 {
	n := uint64(0)
	count := get(wallet).TransactionCount
	for id := uint64(0); id < count; id += 1 {
		tx, err := GetTransaction(wallet, id)
		if nil != err {
			continue
		}
		if pending && !tx.Executed || executed && tx.Executed {
			n += 1
		}
	}
	return n
}

// TransactionIDs - ids in [from, to) matching the filter
func TransactionIDs(wallet common.Address, from uint64, to uint64, pending bool, executed bool) ([]uint64, error) {
	count := get(wallet).TransactionCount
	if to > count {
		to = count
	}
	if from > to {
		return nil, fault.ErrInvalidArgument
	}
	ids := make([]uint64, 0, to-from)
	for id := from; id < to; id += 1 {
		tx, err := GetTransaction(wallet, id)
		if nil != err {
			return nil, err
		}
		if pending && !tx.Executed || executed && tx.Executed {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// CalcMaxWithdraw - value that can still leave today without full confirmation
func CalcMaxWithdraw(wallet common.Address, now time.Time) *uint256.Int {
	r := get(wallet)
	if windowExpired(r, now) {
		return new(uint256.Int).Set(r.DailyLimit)
	}
	if r.DailyLimit.Lt(r.SpentToday) {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).Sub(r.DailyLimit, r.SpentToday)
}

func windowExpired(r *Record, now time.Time) bool {
	return now.After(time.Unix(int64(r.LastDay), 0).Add(day))
}
