// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - pending writes of the current transaction
type Cache interface {
	Get(string) (Entry, bool)
	Set(string, Entry)
	Remove(string)
	Items() map[string]Entry
	Clear()
}

// Entry - one pending write
type Entry struct {
	Deleted bool
	Value   []byte
}

type dbCache struct {
	cache *cache.Cache
}

// entries must live until commit or abort
func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *dbCache) Get(key string) (Entry, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return Entry{}, false
	}
	return obj.(Entry), true
}

func (c *dbCache) Set(key string, entry Entry) {
	c.cache.Set(key, entry, cache.NoExpiration)
}

func (c *dbCache) Remove(key string) {
	c.cache.Delete(key)
}

func (c *dbCache) Items() map[string]Entry {
	items := c.cache.Items()
	result := make(map[string]Entry, len(items))
	for k, item := range items {
		result[k] = item.Object.(Entry)
	}
	return result
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
