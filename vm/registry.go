// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
)

// KindOf - contract kind at address, empty for an account
func KindOf(address common.Address) string {
	return string(storage.Pool.Registry.Get(address.Bytes()))
}

// IsContract - true if address holds a contract
func IsContract(address common.Address) bool {
	return storage.Pool.Registry.Has(address.Bytes())
}

// RequireKind - error unless address holds a contract of kind
func RequireKind(address common.Address, kind string) error {
	if (common.Address{}) == address {
		return fault.ErrZeroAddress
	}
	k := KindOf(address)
	if "" == k {
		return fault.ErrNotAContract
	}
	if kind != k {
		return fault.ErrWrongContractKind
	}
	return nil
}

// Create - deploy a new contract of kind from Self and run its constructor
//
// the address is derived from Self and its deployment nonce, the
// constructor runs as the new contract with Self as its caller
func (c *Context) Create(kind string, value *uint256.Int, constructor func(*Context) error) (common.Address, error) {
	if _, ok := lookupKind(kind); !ok {
		return common.Address{}, fault.ErrWrongContractKind
	}

	nonce, _ := c.trx.GetN(storage.Pool.Nonces, c.self.Bytes())
	address := crypto.CreateAddress(c.self, nonce)
	if c.trx.Has(storage.Pool.Registry, address.Bytes()) {
		return common.Address{}, fault.ErrContractExists
	}

	mark := c.trx.Mark()
	c.trx.PutN(storage.Pool.Nonces, c.self.Bytes(), nonce+1)
	c.trx.Put(storage.Pool.Registry, address.Bytes(), []byte(kind))

	err := c.Call(address, value, constructor)
	if nil != err {
		c.trx.Rollback(mark)
		return common.Address{}, err
	}

	c.Log().Infof("created %s at: %s", kind, address.Hex())
	return address, nil
}
