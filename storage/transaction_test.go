// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
)

func TestBeginTwice(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "first begin")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second begin")

	trx.Abort()

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort")
	trx.Abort()
}

func TestCommitIsVisible(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	trx.Put(pool, []byte("key-one"), []byte("one"))
	trx.PutN(pool, []byte("key-two"), 2)

	assert.Equal(t, []byte("one"), pool.Get([]byte("key-one")), "pending write visible through pool")

	err = trx.Commit()
	assert.Nil(t, err, "commit")
	assert.False(t, trx.InUse(), "in use after commit")

	assert.Equal(t, []byte("one"), pool.Get([]byte("key-one")), "committed value")
	n, found := pool.GetN([]byte("key-two"))
	assert.True(t, found, "committed count")
	assert.Equal(t, uint64(2), n, "committed count value")
}

func TestAbortDiscards(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.TestData

	trx, _ := storage.NewDBTransaction()
	trx.Put(pool, []byte("keep"), []byte("kept"))
	_ = trx.Commit()

	trx, _ = storage.NewDBTransaction()
	trx.Put(pool, []byte("drop"), []byte("dropped"))
	trx.Delete(pool, []byte("keep"))
	assert.False(t, pool.Has([]byte("keep")), "pending delete hides committed value")
	trx.Abort()

	assert.True(t, pool.Has([]byte("keep")), "delete was discarded")
	assert.False(t, pool.Has([]byte("drop")), "put was discarded")
}

func TestRollbackToMark(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.TestData

	trx, _ := storage.NewDBTransaction()
	trx.Put(pool, []byte("a"), []byte("1"))
	_ = trx.Commit()

	trx, _ = storage.NewDBTransaction()
	trx.Put(pool, []byte("a"), []byte("2"))

	outer := trx.Mark()
	trx.Put(pool, []byte("a"), []byte("3"))
	trx.Put(pool, []byte("b"), []byte("x"))

	inner := trx.Mark()
	trx.Delete(pool, []byte("a"))
	assert.Nil(t, trx.Get(pool, []byte("a")), "deleted in inner savepoint")

	trx.Rollback(inner)
	assert.Equal(t, []byte("3"), trx.Get(pool, []byte("a")), "inner rollback")

	trx.Rollback(outer)
	assert.Equal(t, []byte("2"), trx.Get(pool, []byte("a")), "outer rollback")
	assert.False(t, trx.Has(pool, []byte("b")), "outer rollback removes new key")

	err := trx.Commit()
	assert.Nil(t, err, "commit")

	assert.Equal(t, []byte("2"), pool.Get([]byte("a")), "value written before the mark survives")
	assert.False(t, pool.Has([]byte("b")), "rolled back key not committed")
}

func TestCommitWithoutBegin(t *testing.T) {
	setup(t)
	defer teardown()

	trx, _ := storage.NewDBTransaction()
	_ = trx.Commit()

	err := trx.Commit()
	assert.Equal(t, fault.ErrTransactionNotInUse, err, "second commit")
}

func TestWriteOutsideTransactionPanics(t *testing.T) {
	setup(t)
	defer teardown()

	trx, _ := storage.NewDBTransaction()
	trx.Abort()

	assert.Panics(t, func() {
		trx.Put(storage.Pool.TestData, []byte("k"), []byte("v"))
	}, "write after abort")
}
