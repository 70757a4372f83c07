// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vm

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
)

// SetName - record a name for an address
func (c *Context) SetName(name string, address common.Address) {
	c.trx.Put(storage.Pool.AddressBook, []byte(name), address.Bytes())
}

// LookupName - address recorded under name
func LookupName(name string) (common.Address, error) {
	data := storage.Pool.AddressBook.Get([]byte(name))
	if nil == data {
		return common.Address{}, fault.ErrNotFoundName
	}
	return common.BytesToAddress(data), nil
}

// Names - all committed names
func Names() (map[string]common.Address, error) {
	names := make(map[string]common.Address)
	err := storage.Pool.AddressBook.NewFetchCursor().Map(func(key []byte, value []byte) error {
		names[string(key)] = common.BytesToAddress(value)
		return nil
	})
	return names, err
}
