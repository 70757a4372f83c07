// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package membership_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/ForceProtocol/TokenSaleContracts/membership"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
	"github.com/ForceProtocol/TokenSaleContracts/vm/vmtest"
)

var (
	holder = vmtest.Account("holder")
	alice  = vmtest.Account("alice")
	bob    = vmtest.Account("bob")
	carol  = vmtest.Account("carol")
)

func TestMain(m *testing.M) {
	vmtest.Main(m)
}

func TestAddRemoveList(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	admins := membership.New(holder, membership.Admins)
	whitelist := membership.New(holder, membership.Whitelist)

	err := vm.Execute(holder, func(ctx *vm.Context) error {
		assert.True(t, membership.Add(ctx.Trx(), admins, alice), "add alice")
		assert.True(t, membership.Add(ctx.Trx(), admins, bob), "add bob")
		assert.True(t, membership.Add(ctx.Trx(), admins, carol), "add carol")
		assert.False(t, membership.Add(ctx.Trx(), admins, bob), "add bob again")

		// pending writes are visible inside the call
		assert.True(t, membership.Has(admins, bob), "pending member")
		return nil
	})
	assert.Nil(t, err, "execute")

	list, err := membership.List(admins)
	assert.Nil(t, err, "list")
	assert.Equal(t, []common.Address{alice, bob, carol}, list, "insertion order")

	assert.False(t, membership.Has(whitelist, alice), "other tag")
	list, err = membership.List(whitelist)
	assert.Nil(t, err, "list other tag")
	assert.Equal(t, 0, len(list), "other tag empty")

	err = vm.Execute(holder, func(ctx *vm.Context) error {
		assert.True(t, membership.Remove(ctx.Trx(), admins, bob), "remove bob")
		assert.False(t, membership.Remove(ctx.Trx(), admins, bob), "remove bob again")
		assert.True(t, membership.Add(ctx.Trx(), admins, bob), "re-add bob")
		return nil
	})
	assert.Nil(t, err, "execute")

	list, err = membership.List(admins)
	assert.Nil(t, err, "list")
	assert.Equal(t, []common.Address{alice, carol, bob}, list, "re-added member moves to the end")
}

func TestAbortedCallLeavesSetUnchanged(t *testing.T) {
	_, teardown := vmtest.Setup(t)
	defer teardown()

	set := membership.New(holder, membership.Owners)

	err := vm.Execute(holder, func(ctx *vm.Context) error {
		membership.Add(ctx.Trx(), set, alice)
		return errAbort
	})
	assert.Equal(t, errAbort, err, "abort")
	assert.False(t, membership.Has(set, alice), "not a member")

	list, err := membership.List(set)
	assert.Nil(t, err, "list")
	assert.Equal(t, 0, len(list), "empty")
}

type abortError string

func (e abortError) Error() string { return string(e) }

const errAbort = abortError("abort")

func TestSetsOfDifferentHolders(t *testing.T) {
	a := membership.New(alice, membership.Admins)
	b := membership.New(bob, membership.Admins)
	assert.NotEqual(t, a, b, "holder is part of the set")
	assert.Equal(t, common.AddressLength+1, len(a), "set length")
}
