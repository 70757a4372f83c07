// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
)

// Access - for Database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Mark() int
	Put([]byte, []byte)
	Rollback(int)
}

// undo record for a single cache write
type journalEntry struct {
	key      string
	existed  bool
	previous Entry
}

// AccessData - database with a cache of pending writes
type AccessData struct {
	sync.Mutex
	inUse   bool
	db      *leveldb.DB
	cache   Cache
	journal []journalEntry
}

func newDA(db *leveldb.DB, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		cache: cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.record(string(key))
	d.cache.Set(string(key), Entry{Value: v})
}

func (d *AccessData) Delete(key []byte) {
	d.record(string(key))
	d.cache.Set(string(key), Entry{Deleted: true})
}

// remember the cache state of key before it is overwritten
func (d *AccessData) record(key string) {
	previous, existed := d.cache.Get(key)
	d.journal = append(d.journal, journalEntry{
		key:      key,
		existed:  existed,
		previous: previous,
	})
}

// Mark - savepoint for a later Rollback
func (d *AccessData) Mark() int {
	return len(d.journal)
}

// Rollback - undo every write made since the mark
func (d *AccessData) Rollback(mark int) {
	if mark < 0 || mark > len(d.journal) {
		return
	}
	for i := len(d.journal) - 1; i >= mark; i -= 1 {
		j := d.journal[i]
		if j.existed {
			d.cache.Set(j.key, j.previous)
		} else {
			d.cache.Remove(j.key)
		}
	}
	d.journal = d.journal[:mark]
}

// Commit - write all pending items as one batch
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	batch := new(leveldb.Batch)
	for key, entry := range d.cache.Items() {
		if entry.Deleted {
			batch.Delete([]byte(key))
		} else {
			batch.Put([]byte(key), entry.Value)
		}
	}

	err := d.db.Write(batch, nil)

	d.reset()
	return err
}

func (d *AccessData) Get(key []byte) ([]byte, error) {
	if entry, found := d.cache.Get(string(key)); found {
		if entry.Deleted {
			return nil, leveldb.ErrNotFound
		}
		return entry.Value, nil
	}
	return d.db.Get(key, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	if entry, found := d.cache.Get(string(key)); found {
		return !entry.Deleted, nil
	}
	return d.db.Has(key, nil)
}

// Iterator - committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()
	d.reset()
}

func (d *AccessData) reset() {
	d.cache.Clear()
	d.journal = nil
	d.inUse = false
}
