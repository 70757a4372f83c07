// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - ownership edges, admin sets and pause flags
//
// Every governed resource has exactly one current owner.  Whether a
// caller may perform an operation on a resource is decided only by
// CanInvoke from the stored owner, admin set and owner-of-caller
// edges; contracts never consult anything else for authorisation.
package authority

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/membership"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// Operation - class of privileged operation
type Operation int

// operation classes
const (
	OwnerOnly    Operation = iota // the owner of the resource
	AdminOrOwner                  // the owner or a member of its admin set
	SelfOnly                      // the resource calling itself
)

func (op Operation) String() string {
	switch op {
	case OwnerOnly:
		return "OwnerOnly"
	case AdminOrOwner:
		return "AdminOrOwner"
	case SelfOnly:
		return "SelfOnly"
	default:
		return "*Unknown*"
	}
}

// Owner - current owner of a resource, zero if none
func Owner(resource common.Address) common.Address {
	return common.BytesToAddress(storage.Pool.Owners.Get(resource.Bytes()))
}

// SetOwner - initial owner, for constructors
func SetOwner(trx storage.Transaction, resource common.Address, owner common.Address) {
	trx.Put(storage.Pool.Owners, resource.Bytes(), owner.Bytes())
}

// IsAdmin - membership of the admin set of a resource
func IsAdmin(resource common.Address, principal common.Address) bool {
	return membership.Has(membership.New(resource, membership.Admins), principal)
}

// Admins - admin set of a resource in insertion order
func Admins(resource common.Address) ([]common.Address, error) {
	return membership.List(membership.New(resource, membership.Admins))
}

// CanInvoke - pure authorisation predicate
func CanInvoke(caller common.Address, resource common.Address, op Operation) bool {
	if (common.Address{}) == caller {
		return false
	}
	owner := Owner(resource)
	switch op {
	case OwnerOnly:
		return caller == owner
	case AdminOrOwner:
		return caller == owner || IsAdmin(resource, caller)
	case SelfOnly:
		return caller == resource
	default:
		return false
	}
}

// Require - the caller of ctx may perform op on ctx.Self()
func Require(ctx *vm.Context, op Operation) error {
	if !CanInvoke(ctx.Caller(), ctx.Self(), op) {
		return fault.ErrUnauthorised
	}
	return nil
}

// TransferOwnership - owner hands the resource to newOwner
func TransferOwnership(ctx *vm.Context, newOwner common.Address) error {
	if err := Require(ctx, OwnerOnly); nil != err {
		return err
	}
	if (common.Address{}) == newOwner {
		return fault.ErrZeroAddress
	}
	previous := Owner(ctx.Self())
	SetOwner(ctx.Trx(), ctx.Self(), newOwner)
	ctx.Log().Infof("%s ownership: %s → %s", ctx.Self().Hex(), previous.Hex(), newOwner.Hex())
	return nil
}

// AddAdmin - owner grants admin rights
func AddAdmin(ctx *vm.Context, admin common.Address) error {
	if err := Require(ctx, OwnerOnly); nil != err {
		return err
	}
	if (common.Address{}) == admin {
		return fault.ErrZeroAddress
	}
	if !membership.Add(ctx.Trx(), membership.New(ctx.Self(), membership.Admins), admin) {
		return fault.ErrAlreadyAdmin
	}
	ctx.Log().Infof("%s add admin: %s", ctx.Self().Hex(), admin.Hex())
	return nil
}

// RemoveAdmin - owner revokes admin rights
func RemoveAdmin(ctx *vm.Context, admin common.Address) error {
	if err := Require(ctx, OwnerOnly); nil != err {
		return err
	}
	return removeAdmin(ctx, admin)
}

// RemoveAdminOrSelf - owner revokes admin rights, or an admin gives up its own
func RemoveAdminOrSelf(ctx *vm.Context, admin common.Address) error {
	if ctx.Caller() != admin {
		if err := Require(ctx, OwnerOnly); nil != err {
			return err
		}
	}
	return removeAdmin(ctx, admin)
}

func removeAdmin(ctx *vm.Context, admin common.Address) error {
	if !membership.Remove(ctx.Trx(), membership.New(ctx.Self(), membership.Admins), admin) {
		if ctx.Caller() == admin {
			return fault.ErrUnauthorised
		}
		return fault.ErrNotAdmin
	}
	ctx.Log().Infof("%s remove admin: %s", ctx.Self().Hex(), admin.Hex())
	return nil
}
