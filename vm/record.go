// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
)

// GetRecord - decode the state record of a contract
//
// false if no record was stored
func GetRecord(address common.Address, record interface{}) bool {
	return GetRecordFrom(storage.Pool.State, address.Bytes(), record)
}

// PutRecord - store the state record of a contract
func PutRecord(trx storage.Transaction, address common.Address, record interface{}) {
	PutRecordTo(trx, storage.Pool.State, address.Bytes(), record)
}

// GetRecordFrom - decode an RLP record from any pool
func GetRecordFrom(pool *storage.PoolHandle, key []byte, record interface{}) bool {
	data := pool.Get(key)
	if nil == data {
		return false
	}
	err := rlp.DecodeBytes(data, record)
	fault.PanicIfError("vm: decode record", err)
	return true
}

// PutRecordTo - encode an RLP record into any pool
func PutRecordTo(trx storage.Transaction, pool *storage.PoolHandle, key []byte, record interface{}) {
	data, err := rlp.EncodeToBytes(record)
	fault.PanicIfError("vm: encode record", err)
	trx.Put(pool, key, data)
}
