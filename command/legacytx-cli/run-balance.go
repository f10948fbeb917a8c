// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/legacytx/cmdline"
	"github.com/bitmark-inc/legacytx/util"
)

type balanceResult struct {
	Address  string `json:"address"`
	Satoshis uint64 `json:"satoshis,string"`
	Coins    string `json:"coins"`
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	command, err := cmdline.ParseArgs(append([]string{cmdline.BalanceCommand}, c.Args()...))
	if nil != err {
		m.log.Errorf("balance: error: %s", err)
		return err
	}
	m.log.Debugf("balance: %s", command)

	return printJson(m.w, walletBalance(m.config.Wallet))
}

func walletBalance(wallet WalletType) balanceResult {
	return balanceResult{
		Address:  wallet.Address,
		Satoshis: wallet.Balance,
		Coins:    util.FormatCoins(wallet.Balance),
	}
}
