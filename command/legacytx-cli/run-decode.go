// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/legacytx/transactionrecord"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return errors.New("no packed transaction hex given")
	}

	transactions, err := decodeAll(c.Args())
	if nil != err {
		m.log.Errorf("decode: error: %s", err)
		return err
	}
	m.log.Infof("decode: count: %d", len(transactions))

	if c.Bool("json") {
		return printJson(m.w, transactions)
	}
	printTransactions(m.w, transactions)
	return nil
}

// each argument is a hex string of one packed transaction
func decodeAll(arguments []string) ([]*transactionrecord.LegacyTransaction, error) {
	transactions := make([]*transactionrecord.LegacyTransaction, 0, len(arguments))
	for i, s := range arguments {
		data, err := hex.DecodeString(s)
		if nil != err {
			return nil, errors.Wrapf(err, "argument[%d]", i)
		}
		tx, err := transactionrecord.FromBytes(data)
		if nil != err {
			return nil, errors.Wrapf(err, "argument[%d]", i)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func printTransactions(handle io.Writer, transactions []*transactionrecord.LegacyTransaction) {
	for i, tx := range transactions {
		if 0 != i {
			fmt.Fprintln(handle)
		}
		fmt.Fprintf(handle, "%s\n", tx)
	}
}
