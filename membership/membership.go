// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package membership - sets of principals with insertion order
//
// A set is identified by the owning address and a one byte tag, so a
// contract may hold several sets.  Membership is a single key lookup;
// enumeration follows insertion order and skips removed entries.
package membership

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/storage"
)

// tags for the sets in use
const (
	Admins    byte = 'a'
	Whitelist byte = 'w'
	Owners    byte = 'o'
)

const uint64ByteSize = 8

// Set - identifies one set
type Set []byte

// New - the set with tag held by address
func New(holder common.Address, tag byte) Set {
	s := make([]byte, common.AddressLength+1)
	copy(s, holder.Bytes())
	s[common.AddressLength] = tag
	return Set(s)
}

func (s Set) memberKey(member common.Address) []byte {
	return append(append([]byte{}, s...), member.Bytes()...)
}

func (s Set) listKey(count uint64) []byte {
	c := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(c, count)
	return append(append([]byte{}, s...), c...)
}

// Has - test membership
func Has(s Set, member common.Address) bool {
	return storage.Pool.MemberIndex.Has(s.memberKey(member))
}

// Add - append a member, false if already present
//
// set ⧺ member → count
// set ⧺ count → member
func Add(trx storage.Transaction, s Set, member common.Address) bool {
	if Has(s, member) {
		return false
	}

	count, _ := trx.GetN(storage.Pool.MemberNext, s)
	trx.PutN(storage.Pool.MemberNext, s, count+1)

	trx.PutN(storage.Pool.MemberIndex, s.memberKey(member), count)
	trx.Put(storage.Pool.MemberList, s.listKey(count), member.Bytes())
	return true
}

// Remove - delete a member, false if not present
func Remove(trx storage.Transaction, s Set, member common.Address) bool {
	count, found := trx.GetN(storage.Pool.MemberIndex, s.memberKey(member))
	if !found {
		return false
	}
	trx.Delete(storage.Pool.MemberIndex, s.memberKey(member))
	trx.Delete(storage.Pool.MemberList, s.listKey(count))
	return true
}

// List - committed members in insertion order
func List(s Set) ([]common.Address, error) {
	members := make([]common.Address, 0, 8)
	err := storage.Pool.MemberList.NewFetchCursor().Within(s).Map(func(key []byte, value []byte) error {
		members = append(members, common.BytesToAddress(value))
		return nil
	})
	if nil != err {
		return nil, err
	}
	return members, nil
}
