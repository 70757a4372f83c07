// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/ForceProtocol/TokenSaleContracts/authority"
	"github.com/ForceProtocol/TokenSaleContracts/configuration"
	"github.com/ForceProtocol/TokenSaleContracts/controller"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

type controllerState struct {
	Address         string   `json:"address"`
	Owner           string   `json:"owner"`
	Admins          []string `json:"admins"`
	Paused          bool     `json:"paused"`
	Killed          bool     `json:"killed"`
	Successor       string   `json:"successor,omitempty"`
	TokenOwner      string   `json:"tokenOwner"`
	TokenPaused     bool     `json:"tokenPaused"`
	MintingFinished bool     `json:"mintingFinished"`
	TotalSupply     string   `json:"totalSupply"`
}

func runControllerPause(c *cli.Context) error {
	return controllerAction(c, "pause", controller.Pause)
}

func runControllerUnpause(c *cli.Context) error {
	return controllerAction(c, "unpause", controller.Unpause)
}

func runControllerFinishMinting(c *cli.Context) error {
	return controllerAction(c, "finish minting", controller.FinishMinting)
}

func runControllerStartMinting(c *cli.Context) error {
	return controllerAction(c, "start minting", controller.StartMinting)
}

func runControllerMint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	to, err := addressFlag(c, "to")
	if nil != err {
		return err
	}
	amount, err := amountFlag(c, "amount", tokenDecimals(m))
	if nil != err {
		return err
	}
	return controllerAction(c, "mint", func(ctx *vm.Context, ctrl common.Address) error {
		return controller.Mint(ctx, ctrl, to, amount)
	})
}

func runControllerAddAdmin(c *cli.Context) error {
	admin, err := addressArgument(c, 0)
	if nil != err {
		return err
	}
	return controllerAction(c, "add admin", func(ctx *vm.Context, ctrl common.Address) error {
		return controller.AddAdmin(ctx, ctrl, admin)
	})
}

func runControllerRemoveAdmin(c *cli.Context) error {
	admin, err := addressArgument(c, 0)
	if nil != err {
		return err
	}
	return controllerAction(c, "remove admin", func(ctx *vm.Context, ctrl common.Address) error {
		return controller.RemoveAdmin(ctx, ctrl, admin)
	})
}

func runControllerKill(c *cli.Context) error {
	successor, err := addressFlag(c, "successor")
	if nil != err {
		return err
	}
	return controllerAction(c, "kill", func(ctx *vm.Context, ctrl common.Address) error {
		return controller.Kill(ctx, ctrl, successor)
	})
}

// run one operation on the deployed controller as the sender
func controllerAction(c *cli.Context, action string, act func(*vm.Context, common.Address) error) error {
	m := c.App.Metadata["config"].(*metadata)

	sender, err := requireSender(m)
	if nil != err {
		return err
	}
	a, err := lookup(m)
	if nil != err {
		return err
	}

	err = vm.Execute(sender, func(ctx *vm.Context) error {
		return act(ctx, a.Controller)
	})
	if nil != err {
		return err
	}
	m.log.Infof("controller %s by: %s", action, sender.Hex())

	s := controllerState{}
	err = vm.View(func() error {
		admins, err := controller.Admins(a.Controller)
		if nil != err {
			return err
		}
		s = controllerState{
			Address:         a.Controller.Hex(),
			Owner:           authority.Owner(a.Controller).Hex(),
			Admins:          hexList(admins),
			Paused:          controller.Paused(a.Controller),
			Killed:          controller.Killed(a.Controller),
			TokenOwner:      authority.Owner(a.Token).Hex(),
			TokenPaused:     token.Paused(a.Token),
			MintingFinished: token.MintingFinished(a.Token),
			TotalSupply:     configuration.FormatAmount(token.TotalSupply(a.Token), tokenDecimals(m)),
		}
		if successor := controller.Successor(a.Controller); (common.Address{}) != successor {
			s.Successor = successor.Hex()
		}
		return nil
	})
	if nil != err {
		return err
	}
	return printJson(m.w, s)
}
