// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
)

// Payload - a method call held as data
type Payload struct {
	Method string
	Args   [][]byte
}

// Args - RLP encoded arguments of a payload
type Args [][]byte

// EncodePayload - method and RLP encodable arguments as payload bytes
func EncodePayload(method string, arguments ...interface{}) ([]byte, error) {
	p := Payload{
		Method: method,
		Args:   make([][]byte, 0, len(arguments)),
	}
	for _, a := range arguments {
		b, err := rlp.EncodeToBytes(a)
		if nil != err {
			return nil, err
		}
		p.Args = append(p.Args, b)
	}
	return rlp.EncodeToBytes(p)
}

// DecodePayload - inverse of EncodePayload
func DecodePayload(data []byte) (*Payload, error) {
	p := &Payload{}
	if err := rlp.DecodeBytes(data, p); nil != err {
		return nil, fault.ErrInvalidPayload
	}
	return p, nil
}

func (a Args) decode(i int, v interface{}) error {
	if i < 0 || i >= len(a) {
		return fault.ErrInvalidArgument
	}
	if err := rlp.DecodeBytes(a[i], v); nil != err {
		return fault.ErrInvalidArgument
	}
	return nil
}

// Address - argument i as a principal
func (a Args) Address(i int) (common.Address, error) {
	var address common.Address
	err := a.decode(i, &address)
	return address, err
}

// Addresses - argument i as a list of principals
func (a Args) Addresses(i int) ([]common.Address, error) {
	var addresses []common.Address
	err := a.decode(i, &addresses)
	return addresses, err
}

// Amount - argument i as an amount
func (a Args) Amount(i int) (*uint256.Int, error) {
	amount := new(uint256.Int)
	err := a.decode(i, amount)
	return amount, err
}

// Uint64 - argument i as an integer
func (a Args) Uint64(i int) (uint64, error) {
	var n uint64
	err := a.decode(i, &n)
	return n, err
}

// Bytes - argument i as raw bytes
func (a Args) Bytes(i int) ([]byte, error) {
	var b []byte
	err := a.decode(i, &b)
	return b, err
}

// Invoke - perform a call described by payload data from Self
//
// an empty payload is a plain value transfer: accounts always accept
// it, contracts only when their kind has a Receive function
func Invoke(c *Context, destination common.Address, value *uint256.Int, data []byte) error {
	if (common.Address{}) == destination {
		return fault.ErrZeroAddress
	}

	kind := KindOf(destination)
	if "" == kind {
		if 0 != len(data) {
			return fault.ErrNotAContract
		}
		return c.Call(destination, value, func(*Context) error { return nil })
	}

	k, ok := lookupKind(kind)
	if !ok {
		return fault.ErrWrongContractKind
	}

	if 0 == len(data) {
		if nil == k.definition.Receive {
			return fault.ErrNotPayable
		}
		return c.Call(destination, value, k.definition.Receive)
	}

	p, err := DecodePayload(data)
	if nil != err {
		return err
	}
	m, ok := k.definition.Methods[p.Method]
	if !ok {
		return fault.ErrInvalidMethod
	}
	if nil != value && !value.IsZero() && !m.Payable {
		return fault.ErrNotPayable
	}
	return c.Call(destination, value, func(inner *Context) error {
		return m.Run(inner, Args(p.Args))
	})
}

// Submit - run a payload as an external call from sender
func Submit(sender common.Address, destination common.Address, value *uint256.Int, data []byte) error {
	return Execute(sender, func(ctx *Context) error {
		return Invoke(ctx, destination, value, data)
	})
}
