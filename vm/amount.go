// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vm

import (
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
)

// GetAmount - amount stored under key, zero when absent
func GetAmount(pool *storage.PoolHandle, key []byte) *uint256.Int {
	return new(uint256.Int).SetBytes(pool.Get(key))
}

// PutAmount - store an amount, a zero amount removes the key
func PutAmount(trx storage.Transaction, pool *storage.PoolHandle, key []byte, amount *uint256.Int) {
	if nil == amount || amount.IsZero() {
		trx.Delete(pool, key)
		return
	}
	b := amount.Bytes32()
	trx.Put(pool, key, b[:])
}

// Add - checked addition
func Add(a *uint256.Int, b *uint256.Int) (*uint256.Int, error) {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, fault.ErrOverflow
	}
	return sum, nil
}

// Sub - checked subtraction, underflow reports err
func Sub(a *uint256.Int, b *uint256.Int, err error) (*uint256.Int, error) {
	if a.Lt(b) {
		return nil, err
	}
	return new(uint256.Int).Sub(a, b), nil
}

// Mul - checked multiplication
func Mul(a *uint256.Int, b *uint256.Int) (*uint256.Int, error) {
	product, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, fault.ErrOverflow
	}
	return product, nil
}
