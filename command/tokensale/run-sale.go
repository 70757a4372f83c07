// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/ForceProtocol/TokenSaleContracts/configuration"
	"github.com/ForceProtocol/TokenSaleContracts/controller"
	"github.com/ForceProtocol/TokenSaleContracts/crowdsale"
	"github.com/ForceProtocol/TokenSaleContracts/deployment"
	"github.com/ForceProtocol/TokenSaleContracts/token"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

type saleStatus struct {
	Addresses        map[string]string `json:"addresses"`
	Now              time.Time         `json:"now"`
	Start            time.Time         `json:"start"`
	End              time.Time         `json:"end"`
	Paused           bool              `json:"paused"`
	Ended            bool              `json:"ended"`
	Finalized        bool              `json:"finalized"`
	GoalReached      bool              `json:"goalReached"`
	Rate             string            `json:"rate"`
	TokensSold       string            `json:"tokensSold"`
	TokenCap         string            `json:"tokenCap"`
	Raised           string            `json:"raised"`
	Goal             string            `json:"goal"`
	MinContribution  string            `json:"minContribution"`
	TotalSupply      string            `json:"totalSupply"`
	MintingFinished  bool              `json:"mintingFinished"`
	WalletBalance    string            `json:"walletBalance"`
	ControllerKilled bool              `json:"controllerKilled"`
}

type accountBalance struct {
	Account string `json:"account"`
	Native  string `json:"native"`
	Tokens  string `json:"tokens"`
	Deposit string `json:"deposit"`
}

func runFund(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	to, err := addressFlag(c, "to")
	if nil != err {
		return err
	}
	amount, err := amountFlag(c, "amount", configuration.NativeDecimals)
	if nil != err {
		return err
	}

	if err := vm.Fund(to, amount); nil != err {
		return err
	}
	m.log.Infof("fund: %s  amount: %s", to.Hex(), amount.Dec())
	return printJson(m.w, accountBalance{
		Account: to.Hex(),
		Native:  native(vm.BalanceOf(to)),
	})
}

func runDeploy(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	sender, err := requireSender(m)
	if nil != err {
		return err
	}
	p, err := m.config.Sale.Parameters()
	if nil != err {
		return err
	}

	a, err := deployment.Deploy(sender, p)
	if nil != err {
		return err
	}
	m.log.Infof("deployed by: %s  sale: %s", sender.Hex(), a.Crowdsale.Hex())
	return printJson(m.w, hexNames(a.Names()))
}

func runStatus(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	a, err := lookup(m)
	if nil != err {
		return err
	}
	decimals := tokenDecimals(m)

	// read before View, which holds the same lock
	now := vm.Now()

	s := saleStatus{}
	err = vm.View(func() error {
		r, err := crowdsale.Get(a.Crowdsale)
		if nil != err {
			return err
		}
		s = saleStatus{
			Addresses:        hexNames(a.Names()),
			Now:              now,
			Start:            time.Unix(int64(r.StartTime), 0).UTC(),
			End:              time.Unix(int64(r.EndTime), 0).UTC(),
			Paused:           crowdsale.Paused(a.Crowdsale),
			Ended:            crowdsale.HasEnded(a.Crowdsale, now),
			Finalized:        r.Finalized,
			GoalReached:      crowdsale.GoalReached(a.Crowdsale),
			Rate:             r.Rate.Dec(),
			TokensSold:       configuration.FormatAmount(r.TokensSold, decimals),
			TokenCap:         configuration.FormatAmount(r.TokenCap, decimals),
			Raised:           native(r.WeiRaised),
			Goal:             native(r.Goal),
			MinContribution:  native(r.MinContribution),
			TotalSupply:      configuration.FormatAmount(token.TotalSupply(a.Token), decimals),
			MintingFinished:  token.MintingFinished(a.Token),
			WalletBalance:    native(vm.BalanceOf(a.Wallet)),
			ControllerKilled: controller.Killed(a.Controller),
		}
		return nil
	})
	if nil != err {
		return err
	}
	return printJson(m.w, s)
}

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	account := m.sender
	if c.NArg() > 0 {
		var err error
		account, err = addressArgument(c, 0)
		if nil != err {
			return err
		}
	}
	if (common.Address{}) == account {
		return ErrNoSender
	}

	a, err := lookup(m)
	if nil != err {
		return err
	}

	b := accountBalance{}
	err = vm.View(func() error {
		b = accountBalance{
			Account: account.Hex(),
			Native:  native(vm.BalanceOf(account)),
			Tokens:  configuration.FormatAmount(token.BalanceOf(a.Token, account), tokenDecimals(m)),
			Deposit: native(crowdsale.Deposit(a.Crowdsale, account)),
		}
		return nil
	})
	if nil != err {
		return err
	}
	return printJson(m.w, b)
}

func runBuy(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	sender, err := requireSender(m)
	if nil != err {
		return err
	}
	amount, err := amountFlag(c, "amount", configuration.NativeDecimals)
	if nil != err {
		return err
	}
	beneficiary := sender
	if "" != c.String("beneficiary") {
		beneficiary, err = addressFlag(c, "beneficiary")
		if nil != err {
			return err
		}
	}

	a, err := lookup(m)
	if nil != err {
		return err
	}

	err = vm.Execute(sender, func(ctx *vm.Context) error {
		return crowdsale.BuyTokens(ctx, a.Crowdsale, beneficiary, amount)
	})
	if nil != err {
		return err
	}
	m.log.Infof("buy: %s  for: %s  value: %s", sender.Hex(), beneficiary.Hex(), amount.Dec())
	return printJson(m.w, accountBalance{
		Account: beneficiary.Hex(),
		Native:  native(vm.BalanceOf(beneficiary)),
		Tokens:  configuration.FormatAmount(token.BalanceOf(a.Token, beneficiary), tokenDecimals(m)),
		Deposit: native(crowdsale.Deposit(a.Crowdsale, sender)),
	})
}

func runFinalize(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	sender, err := requireSender(m)
	if nil != err {
		return err
	}
	founders, err := addressFlag(c, "founders")
	if nil != err {
		return err
	}
	a, err := lookup(m)
	if nil != err {
		return err
	}

	err = vm.Execute(sender, func(ctx *vm.Context) error {
		return crowdsale.Finalize(ctx, a.Crowdsale, founders)
	})
	if nil != err {
		return err
	}
	m.log.Infof("finalized by: %s", sender.Hex())
	return runStatus(c)
}

func runRefund(c *cli.Context) error {
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
		return crowdsale.ClaimRefund(ctx, a.Crowdsale)
	})
	if nil != err {
		return err
	}
	m.log.Infof("refund: %s", sender.Hex())
	return printJson(m.w, accountBalance{
		Account: sender.Hex(),
		Native:  native(vm.BalanceOf(sender)),
		Tokens:  configuration.FormatAmount(token.BalanceOf(a.Token, sender), tokenDecimals(m)),
		Deposit: native(crowdsale.Deposit(a.Crowdsale, sender)),
	})
}

func hexNames(names map[string]common.Address) map[string]string {
	result := make(map[string]string, len(names))
	for name, address := range names {
		result[name] = address.Hex()
	}
	return result
}
