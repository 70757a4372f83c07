// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package controller

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/datacentre"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// Mint - create tokens through the controlled token
func Mint(ctx *vm.Context, ctrl common.Address, to common.Address, amount *uint256.Int) error {
	return ctx.CallContract(ctrl, Kind, nil, func(c *vm.Context) error {
		return mint(c, to, amount)
	})
}

func mint(c *vm.Context, to common.Address, amount *uint256.Int) error {
	r, err := guard(c)
	if nil != err {
		return err
	}
	if err := authority.WhenNotPaused(c.Self()); nil != err {
		return err
	}
	if err := requireLedger(c, r); nil != err {
		return err
	}
	return token.Mint(c, r.Token, to, amount)
}

// Pause - stop the controller and its token
func Pause(ctx *vm.Context, ctrl common.Address) error {
	return ctx.CallContract(ctrl, Kind, nil, pause)
}

func pause(c *vm.Context) error {
	r, err := guard(c)
	if nil != err {
		return err
	}
	if err := authority.WhenNotPaused(c.Self()); nil != err {
		return err
	}
	if err := requireLedger(c, r); nil != err {
		return err
	}
	authority.SetPaused(c.Trx(), c.Self(), true)
	if !token.Paused(r.Token) {
		if err := token.Pause(c, r.Token); nil != err {
			return err
		}
	}
	c.Log().Infof("%s paused by: %s", c.Self().Hex(), c.Caller().Hex())
	c.Emit("Pause", map[string]string{"by": c.Caller().Hex()})
	return nil
}

// Unpause - restart the controller and its token
func Unpause(ctx *vm.Context, ctrl common.Address) error {
	return ctx.CallContract(ctrl, Kind, nil, unpause)
}

func unpause(c *vm.Context) error {
	r, err := guard(c)
	if nil != err {
		return err
	}
	if err := authority.WhenPaused(c.Self()); nil != err {
		return err
	}
	if err := requireLedger(c, r); nil != err {
		return err
	}
	authority.SetPaused(c.Trx(), c.Self(), false)
	if token.Paused(r.Token) {
		if err := token.Unpause(c, r.Token); nil != err {
			return err
		}
	}
	c.Log().Infof("%s unpaused by: %s", c.Self().Hex(), c.Caller().Hex())
	c.Emit("Unpause", map[string]string{"by": c.Caller().Hex()})
	return nil
}

// FinishMinting - close minting on the token
func FinishMinting(ctx *vm.Context, ctrl common.Address) error {
	return ctx.CallContract(ctrl, Kind, nil, func(c *vm.Context) error {
		return setMinting(c, false)
	})
}

// StartMinting - reopen minting on the token
func StartMinting(ctx *vm.Context, ctrl common.Address) error {
	return ctx.CallContract(ctrl, Kind, nil, func(c *vm.Context) error {
		return setMinting(c, true)
	})
}

func setMinting(c *vm.Context, open bool) error {
	r, err := guard(c)
	if nil != err {
		return err
	}
	if err := requireLedger(c, r); nil != err {
		return err
	}
	if open {
		return token.StartMinting(c, r.Token)
	}
	return token.FinishMinting(c, r.Token)
}

// TransferTokenOwnership - hand the token to newOwner, controller must be paused
func TransferTokenOwnership(ctx *vm.Context, ctrl common.Address, newOwner common.Address) error {
	return ctx.CallContract(ctrl, Kind, nil, func(c *vm.Context) error {
		return transferTokenOwnership(c, newOwner)
	})
}

func transferTokenOwnership(c *vm.Context, newOwner common.Address) error {
	r, err := guard(c)
	if nil != err {
		return err
	}
	if err := authority.WhenPaused(c.Self()); nil != err {
		return err
	}
	return token.TransferOwnership(c, r.Token, newOwner)
}

// TransferDataCentreOwnership - hand the data centre to newOwner, controller must be paused
func TransferDataCentreOwnership(ctx *vm.Context, ctrl common.Address, newOwner common.Address) error {
	return ctx.CallContract(ctrl, Kind, nil, func(c *vm.Context) error {
		return transferDataCentreOwnership(c, newOwner)
	})
}

func transferDataCentreOwnership(c *vm.Context, newOwner common.Address) error {
	r, err := guard(c)
	if nil != err {
		return err
	}
	if err := authority.WhenPaused(c.Self()); nil != err {
		return err
	}
	return datacentre.TransferOwnership(c, r.DataCentre, newOwner)
}

// AddAdmin - owner grants admin rights
func AddAdmin(ctx *vm.Context, ctrl common.Address, admin common.Address) error {
	return ctx.CallContract(ctrl, Kind, nil, func(c *vm.Context) error {
		if _, err := active(c); nil != err {
			return err
		}
		return authority.AddAdmin(c, admin)
	})
}

// RemoveAdmin - owner revokes admin rights
func RemoveAdmin(ctx *vm.Context, ctrl common.Address, admin common.Address) error {
	return ctx.CallContract(ctrl, Kind, nil, func(c *vm.Context) error {
		if _, err := active(c); nil != err {
			return err
		}
		return authority.RemoveAdmin(c, admin)
	})
}

// TransferOwnership - owner hands the controller on
func TransferOwnership(ctx *vm.Context, ctrl common.Address, newOwner common.Address) error {
	return ctx.CallContract(ctrl, Kind, nil, func(c *vm.Context) error {
		if _, err := active(c); nil != err {
			return err
		}
		return authority.TransferOwnership(c, newOwner)
	})
}
