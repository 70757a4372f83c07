// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/ForceProtocol/TokenSaleContracts/configuration"
	"github.com/ForceProtocol/TokenSaleContracts/multisig"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

type walletTransaction struct {
	ID            uint64   `json:"id"`
	Destination   string   `json:"destination"`
	Value         string   `json:"value"`
	Data          string   `json:"data,omitempty"`
	Executed      bool     `json:"executed"`
	Failed        bool     `json:"failed"`
	Confirmations []string `json:"confirmations"`
}

type walletState struct {
	Address      string   `json:"address"`
	Balance      string   `json:"balance"`
	Owners       []string `json:"owners"`
	Required     uint64   `json:"required"`
	DailyLimit   string   `json:"dailyLimit"`
	MaxWithdraw  string   `json:"maxWithdraw"`
	Transactions uint64   `json:"transactions"`
	Pending      []uint64 `json:"pending"`
}

func runWalletSubmit(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	sender, err := requireSender(m)
	if nil != err {
		return err
	}
	destination, err := addressFlag(c, "destination")
	if nil != err {
		return err
	}
	value, err := configuration.ParseAmount(c.String("value"), configuration.NativeDecimals)
	if nil != err {
		return err
	}

	var data []byte
	if method := c.String("method"); "" != method {
		data, err = encodePayload(method, c.Args(), tokenDecimals(m))
		if nil != err {
			return err
		}
	}

	a, err := lookup(m)
	if nil != err {
		return err
	}

	id := uint64(0)
	err = vm.Execute(sender, func(ctx *vm.Context) error {
		var err error
		id, err = multisig.SubmitTransaction(ctx, a.Wallet, destination, value, data)
		return err
	})
	if nil != err {
		return err
	}
	m.log.Infof("wallet submit: %d  by: %s  to: %s", id, sender.Hex(), destination.Hex())
	return showTransaction(m, a.Wallet, id)
}

func runWalletConfirm(c *cli.Context) error {
	return walletAction(c, "confirm", multisig.ConfirmTransaction)
}

func runWalletRevoke(c *cli.Context) error {
	return walletAction(c, "revoke", multisig.RevokeConfirmation)
}

func runWalletExecute(c *cli.Context) error {
	return walletAction(c, "execute", multisig.ExecuteTransaction)
}

func walletAction(c *cli.Context, action string, act func(*vm.Context, common.Address, uint64) error) error {
	m := c.App.Metadata["config"].(*metadata)

	sender, err := requireSender(m)
	if nil != err {
		return err
	}
	id, err := idArgument(c)
	if nil != err {
		return err
	}
	a, err := lookup(m)
	if nil != err {
		return err
	}

	err = vm.Execute(sender, func(ctx *vm.Context) error {
		return act(ctx, a.Wallet, id)
	})
	if nil != err {
		return err
	}
	m.log.Infof("wallet %s: %d  by: %s", action, id, sender.Hex())
	return showTransaction(m, a.Wallet, id)
}

func runWalletShow(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	a, err := lookup(m)
	if nil != err {
		return err
	}

	if c.NArg() > 0 {
		id, err := idArgument(c)
		if nil != err {
			return err
		}
		return showTransaction(m, a.Wallet, id)
	}

	now := vm.Now()
	s := walletState{}
	err = vm.View(func() error {
		r, err := multisig.Get(a.Wallet)
		if nil != err {
			return err
		}
		pending, err := multisig.TransactionIDs(a.Wallet, 0, r.TransactionCount, true, false)
		if nil != err {
			return err
		}
		s = walletState{
			Address:      a.Wallet.Hex(),
			Balance:      native(vm.BalanceOf(a.Wallet)),
			Owners:       hexList(r.Owners),
			Required:     r.Required,
			DailyLimit:   native(r.DailyLimit),
			MaxWithdraw:  native(multisig.CalcMaxWithdraw(a.Wallet, now)),
			Transactions: r.TransactionCount,
			Pending:      pending,
		}
		return nil
	})
	if nil != err {
		return err
	}
	return printJson(m.w, s)
}

func showTransaction(m *metadata, wallet common.Address, id uint64) error {
	t := walletTransaction{}
	err := vm.View(func() error {
		tx, err := multisig.GetTransaction(wallet, id)
		if nil != err {
			return err
		}
		t = walletTransaction{
			ID:            id,
			Destination:   tx.Destination.Hex(),
			Value:         native(tx.Value),
			Data:          hex.EncodeToString(tx.Data),
			Executed:      tx.Executed,
			Failed:        tx.Failed,
			Confirmations: hexList(multisig.Confirmations(wallet, id)),
		}
		return nil
	})
	if nil != err {
		return err
	}
	return printJson(m.w, t)
}

func hexList(addresses []common.Address) []string {
	list := make([]string, 0, len(addresses))
	for _, a := range addresses {
		list = append(list, a.Hex())
	}
	return list
}
