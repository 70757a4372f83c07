// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crowdsale

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/controller"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// AddAdmin - owner grants admin rights
func AddAdmin(ctx *vm.Context, sale common.Address, admin common.Address) error {
	return ctx.CallContract(sale, Kind, nil, func(c *vm.Context) error {
		return authority.AddAdmin(c, admin)
	})
}

// RemoveAdmin - owner revokes admin rights, or an admin gives up its own
func RemoveAdmin(ctx *vm.Context, sale common.Address, admin common.Address) error {
	return ctx.CallContract(sale, Kind, nil, func(c *vm.Context) error {
		return authority.RemoveAdminOrSelf(c, admin)
	})
}

// TransferOwnership - owner hands the sale on
func TransferOwnership(ctx *vm.Context, sale common.Address, newOwner common.Address) error {
	return ctx.CallContract(sale, Kind, nil, func(c *vm.Context) error {
		return authority.TransferOwnership(c, newOwner)
	})
}

// Pause - stop purchases and token transfers
func Pause(ctx *vm.Context, sale common.Address) error {
	return ctx.CallContract(sale, Kind, nil, func(c *vm.Context) error {
		if err := authority.Require(c, authority.AdminOrOwner); nil != err {
			return err
		}
		return pause(c, get(c.Self()))
	})
}

// Unpause - restart purchases and token transfers
func Unpause(ctx *vm.Context, sale common.Address) error {
	return ctx.CallContract(sale, Kind, nil, func(c *vm.Context) error {
		if err := authority.Require(c, authority.AdminOrOwner); nil != err {
			return err
		}
		return unpause(c, get(c.Self()))
	})
}

func pause(c *vm.Context, r *Record) error {
	if !r.direct() {
		return controller.Pause(c, r.Controller)
	}
	if err := authority.WhenNotPaused(c.Self()); nil != err {
		return err
	}
	authority.SetPaused(c.Trx(), c.Self(), true)
	if !token.Paused(r.Token) {
		if err := token.Pause(c, r.Token); nil != err {
			return err
		}
	}
	c.Log().Infof("%s paused by: %s", c.Self().Hex(), c.Caller().Hex())
	return nil
}

func unpause(c *vm.Context, r *Record) error {
	if !r.direct() {
		return controller.Unpause(c, r.Controller)
	}
	if err := authority.WhenPaused(c.Self()); nil != err {
		return err
	}
	authority.SetPaused(c.Trx(), c.Self(), false)
	if token.Paused(r.Token) {
		if err := token.Unpause(c, r.Token); nil != err {
			return err
		}
	}
	c.Log().Infof("%s unpaused by: %s", c.Self().Hex(), c.Caller().Hex())
	return nil
}

// pause unless already paused
func ensurePaused(c *vm.Context, r *Record) error {
	if authority.Paused(r.pauseHolder(c.Self())) {
		return nil
	}
	return pause(c, r)
}

// FinishMinting - pause, close minting and in direct mode return the token to the owner
func FinishMinting(ctx *vm.Context, sale common.Address) error {
	return ctx.CallContract(sale, Kind, nil, finishMinting)
}

func finishMinting(c *vm.Context) error {
	if err := authority.Require(c, authority.AdminOrOwner); nil != err {
		return err
	}
	r := get(c.Self())
	if err := ensurePaused(c, r); nil != err {
		return err
	}
	if !r.direct() {
		return controller.FinishMinting(c, r.Controller)
	}
	if err := token.FinishMinting(c, r.Token); nil != err {
		return err
	}
	return token.TransferOwnership(c, r.Token, authority.Owner(c.Self()))
}

// StartMinting - reopen minting on a paused sale and unpause it
func StartMinting(ctx *vm.Context, sale common.Address) error {
	return ctx.CallContract(sale, Kind, nil, startMinting)
}

func startMinting(c *vm.Context) error {
	if err := authority.Require(c, authority.AdminOrOwner); nil != err {
		return err
	}
	r := get(c.Self())
	if err := authority.WhenPaused(r.pauseHolder(c.Self())); nil != err {
		return err
	}
	if r.direct() {
		if err := token.StartMinting(c, r.Token); nil != err {
			return err
		}
	} else if err := controller.StartMinting(c, r.Controller); nil != err {
		return err
	}
	return unpause(c, r)
}

// TransferDataCentreOwnership - pause and hand the data centre to newOwner
func TransferDataCentreOwnership(ctx *vm.Context, sale common.Address, newOwner common.Address) error {
	return ctx.CallContract(sale, Kind, nil, func(c *vm.Context) error {
		return transferDataCentreOwnership(c, newOwner)
	})
}

func transferDataCentreOwnership(c *vm.Context, newOwner common.Address) error {
	if err := authority.Require(c, authority.AdminOrOwner); nil != err {
		return err
	}
	r := get(c.Self())
	if err := ensurePaused(c, r); nil != err {
		return err
	}
	if r.direct() {
		return token.TransferDataCentreOwnership(c, r.Token, newOwner)
	}
	return controller.TransferDataCentreOwnership(c, r.Controller, newOwner)
}
