// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
)

// NewTestAccess - expose the data access constructor to the external tests
func NewTestAccess(db *leveldb.DB, cache Cache) Access {
	return newDA(db, cache)
}
