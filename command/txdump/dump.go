// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/legacytx/transactionrecord"
)

// one decoded record with the bytes it came from
type dumpItem struct {
	Packed      transactionrecord.Packed             `json:"packed"`
	Consumed    int                                  `json:"consumed"`
	Transaction *transactionrecord.LegacyTransaction `json:"transaction"`
}

// decode every hex record and write them out
//
// stops at the first record that fails to decode
func dumpRecords(handle io.Writer, records []string, asJSON bool) error {
	items := make([]dumpItem, 0, len(records))
	for i, s := range records {
		var packed transactionrecord.Packed
		if err := packed.UnmarshalText([]byte(s)); nil != err {
			return errors.Wrapf(err, "record[%d]: hex", i)
		}
		tx, n, err := packed.Unpack()
		if nil != err {
			return errors.Wrapf(err, "record[%d]: %s", i, packed)
		}
		items = append(items, dumpItem{
			Packed:      packed,
			Consumed:    n,
			Transaction: tx,
		})
	}

	if asJSON {
		b, err := json.MarshalIndent(items, "", "  ")
		if nil != err {
			return err
		}
		fmt.Fprintf(handle, "%s\n", b)
		return nil
	}

	for i, item := range items {
		if 0 != i {
			fmt.Fprintln(handle)
		}
		fmt.Fprintf(handle, "packed: %s\n", item.Packed)
		if n := len(item.Packed) - item.Consumed; n > 0 {
			fmt.Fprintf(handle, "ignored: %d trailing bytes\n", n)
		}
		fmt.Fprintf(handle, "%s\n", item.Transaction)
	}
	return nil
}

// one hex record per line, blank lines and '#' comments skipped
// "-" reads standard input
func readRecordFile(name string) ([]string, error) {
	var r io.Reader
	if "-" == name {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if nil != err {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return readRecords(r)
}

func readRecords(r io.Reader) ([]string, error) {
	records := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		records = append(records, line)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return records, nil
}
