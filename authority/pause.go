// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
)

// Paused - pause flag of a resource
func Paused(resource common.Address) bool {
	return storage.Pool.Paused.Has(resource.Bytes())
}

// SetPaused - write the pause flag
func SetPaused(trx storage.Transaction, resource common.Address, paused bool) {
	if paused {
		trx.Put(storage.Pool.Paused, resource.Bytes(), []byte{1})
	} else {
		trx.Delete(storage.Pool.Paused, resource.Bytes())
	}
}

// WhenNotPaused - ErrContractPaused if the resource is paused
func WhenNotPaused(resource common.Address) error {
	if Paused(resource) {
		return fault.ErrContractPaused
	}
	return nil
}

// WhenPaused - ErrNotPaused unless the resource is paused
func WhenPaused(resource common.Address) error {
	if !Paused(resource) {
		return fault.ErrNotPaused
	}
	return nil
}
