// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
)

// Transaction - atomic group of writes to the pools
//
// Mark and Rollback give nested savepoints inside one transaction
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Mark() int
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Rollback(int)
}

// TransactionImpl - the single transaction over the state database
type TransactionImpl struct {
	sync.Mutex
	inUse  bool
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		inUse:  false,
		access: access,
	}
}

func (t *TransactionImpl) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}
	err := t.access.Begin()
	if nil != err {
		return err
	}
	t.inUse = true
	return nil
}

func (t *TransactionImpl) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	t.mustBeInUse()
	handle.put(key, value)
}

func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.mustBeInUse()
	handle.putN(key, value)
}

func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	t.mustBeInUse()
	handle.remove(key)
}

func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

func (t *TransactionImpl) Mark() int {
	return t.access.Mark()
}

func (t *TransactionImpl) Rollback(mark int) {
	t.access.Rollback(mark)
}

func (t *TransactionImpl) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotInUse
	}
	t.inUse = false
	return t.access.Commit()
}

func (t *TransactionImpl) Abort() {
	t.Lock()
	defer t.Unlock()

	t.inUse = false
	t.access.Abort()
}

func (t *TransactionImpl) mustBeInUse() {
	t.Lock()
	inUse := t.inUse
	t.Unlock()
	if !inUse {
		fault.Panic("storage: write outside transaction")
	}
}
