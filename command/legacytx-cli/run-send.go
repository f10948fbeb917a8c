// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/legacytx/cmdline"
	"github.com/bitmark-inc/legacytx/transactionrecord"
	"github.com/bitmark-inc/legacytx/util"
)

type sendResult struct {
	Command     cmdline.Send                         `json:"command"`
	Transaction *transactionrecord.LegacyTransaction `json:"transaction"`
	Packed      transactionrecord.Packed             `json:"packed"`
}

func runSend(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	command, err := cmdline.ParseArgs(append([]string{cmdline.SendCommand}, c.Args()...))
	if nil != err {
		m.log.Errorf("send: error: %s", err)
		return err
	}
	send := command.(cmdline.Send)

	if m.verbose {
		fmt.Fprintf(m.e, "command: %s\n", send)
	}

	tx := draftTransaction(send, m.config.Transaction)
	m.log.Infof("send: amount: %d  address: %q", send.Amount, send.Address)

	result := sendResult{
		Command:     send,
		Transaction: tx,
		Packed:      tx.Pack(),
	}

	if c.Bool("json") {
		return printJson(m.w, result)
	}

	fmt.Fprintf(m.w, "%s\n%s\n", result.Command, result.Transaction)
	fmt.Fprintf(m.w, "total: %d satoshis (%s BTC)\n", tx.TotalOutputValue(), util.FormatCoins(tx.TotalOutputValue()))
	fmt.Fprintf(m.w, "packed: %s\n", result.Packed)
	return nil
}

// a single output paying the amount, no inputs are selected and the
// address is not turned into a script
func draftTransaction(send cmdline.Send, defaults TransactionType) *transactionrecord.LegacyTransaction {
	return transactionrecord.NewBuilder().
		Version(defaults.Version).
		AddOutput(transactionrecord.NewTxOutput(send.Amount, []byte{})).
		LockTime(defaults.LockTime).
		Build()
}
