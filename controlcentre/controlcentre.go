// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package controlcentre - single use admin proxy for crowdsale operations
//
// The owner grants the control centre admin rights on a sale, asks it
// to perform one operation and the control centre then gives the grant
// up again.
package controlcentre

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/crowdsale"
	"github.com/ForceProtocol/TokenSaleContracts/datacentre"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// Kind - contract kind name
const Kind = "controlcentre"

// Deploy - new control centre owned by the deployer
func Deploy(ctx *vm.Context) (common.Address, error) {
	return ctx.Create(Kind, nil, func(c *vm.Context) error {
		authority.SetOwner(c.Trx(), c.Self(), c.Caller())
		return nil
	})
}

// run op against sale with the single use grant
func proxy(c *vm.Context, sale common.Address, op func(*vm.Context) error) error {
	if err := authority.Require(c, authority.OwnerOnly); nil != err {
		return err
	}
	if err := vm.RequireKind(sale, crowdsale.Kind); nil != err {
		return err
	}
	if !authority.IsAdmin(sale, c.Self()) {
		return fault.ErrUnauthorised
	}
	if err := op(c); nil != err {
		return err
	}
	return crowdsale.RemoveAdmin(c, sale, c.Self())
}

// PauseCrowdsale - pause sale and its token
func PauseCrowdsale(ctx *vm.Context, cc common.Address, sale common.Address) error {
	return ctx.CallContract(cc, Kind, nil, func(c *vm.Context) error {
		return pauseCrowdsale(c, sale)
	})
}

func pauseCrowdsale(c *vm.Context, sale common.Address) error {
	return proxy(c, sale, func(c *vm.Context) error {
		return crowdsale.Pause(c, sale)
	})
}

// UnpauseCrowdsale - restart sale and its token
func UnpauseCrowdsale(ctx *vm.Context, cc common.Address, sale common.Address) error {
	return ctx.CallContract(cc, Kind, nil, func(c *vm.Context) error {
		return unpauseCrowdsale(c, sale)
	})
}

func unpauseCrowdsale(c *vm.Context, sale common.Address) error {
	return proxy(c, sale, func(c *vm.Context) error {
		return crowdsale.Unpause(c, sale)
	})
}

// FinishMinting - close minting through sale
func FinishMinting(ctx *vm.Context, cc common.Address, sale common.Address) error {
	return ctx.CallContract(cc, Kind, nil, func(c *vm.Context) error {
		return finishMinting(c, sale)
	})
}

func finishMinting(c *vm.Context, sale common.Address) error {
	return proxy(c, sale, func(c *vm.Context) error {
		return crowdsale.FinishMinting(c, sale)
	})
}

// StartMinting - reopen minting through a paused sale
func StartMinting(ctx *vm.Context, cc common.Address, sale common.Address) error {
	return ctx.CallContract(cc, Kind, nil, func(c *vm.Context) error {
		return startMinting(c, sale)
	})
}

func startMinting(c *vm.Context, sale common.Address) error {
	return proxy(c, sale, func(c *vm.Context) error {
		return crowdsale.StartMinting(c, sale)
	})
}

// TransferDataCentreOwnership - pause sale and hand its data centre to newOwner
func TransferDataCentreOwnership(ctx *vm.Context, cc common.Address, sale common.Address, newOwner common.Address) error {
	return ctx.CallContract(cc, Kind, nil, func(c *vm.Context) error {
		return transferDataCentreOwnership(c, sale, newOwner)
	})
}

func transferDataCentreOwnership(c *vm.Context, sale common.Address, newOwner common.Address) error {
	return proxy(c, sale, func(c *vm.Context) error {
		return crowdsale.TransferDataCentreOwnership(c, sale, newOwner)
	})
}

// ReturnDataCentreOwnership - give a data centre held here back to the sale's ledger and unpause
//
// the data centre must have been handed to the control centre beforehand
func ReturnDataCentreOwnership(ctx *vm.Context, cc common.Address, sale common.Address) error {
	return ctx.CallContract(cc, Kind, nil, func(c *vm.Context) error {
		return returnDataCentreOwnership(c, sale)
	})
}

func returnDataCentreOwnership(c *vm.Context, sale common.Address) error {
	return proxy(c, sale, func(c *vm.Context) error {
		dc := crowdsale.DataCentre(sale)
		if authority.Owner(dc) != c.Self() {
			return fault.ErrUnauthorised
		}
		if err := datacentre.TransferOwnership(c, dc, crowdsale.LedgerAuthority(sale)); nil != err {
			return err
		}
		return crowdsale.Unpause(c, sale)
	})
}

// TransferOwnership - owner hands the control centre on
func TransferOwnership(ctx *vm.Context, cc common.Address, newOwner common.Address) error {
	return ctx.CallContract(cc, Kind, nil, func(c *vm.Context) error {
		return authority.TransferOwnership(c, newOwner)
	})
}

func saleMethod(op func(*vm.Context, common.Address) error) vm.Method {
	return vm.Method{Run: func(c *vm.Context, args vm.Args) error {
		sale, err := args.Address(0)
		if nil != err {
			return err
		}
		return op(c, sale)
	}}
}

func init() {
	vm.Register(Kind, vm.Definition{
		Methods: vm.Methods{
			"pauseCrowdsale":            saleMethod(pauseCrowdsale),
			"unpauseCrowdsale":          saleMethod(unpauseCrowdsale),
			"finishMinting":             saleMethod(finishMinting),
			"startMinting":              saleMethod(startMinting),
			"returnDataCentreOwnership": saleMethod(returnDataCentreOwnership),

			"transferDataCentreOwnership": {Run: func(c *vm.Context, args vm.Args) error {
				sale, err := args.Address(0)
				if nil != err {
					return err
				}
				newOwner, err := args.Address(1)
				if nil != err {
					return err
				}
				return transferDataCentreOwnership(c, sale, newOwner)
			}},
			"transferOwnership": {Run: func(c *vm.Context, args vm.Args) error {
				newOwner, err := args.Address(0)
				if nil != err {
					return err
				}
				return authority.TransferOwnership(c, newOwner)
			}},
		},
	})
}
