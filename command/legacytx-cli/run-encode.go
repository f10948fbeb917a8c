// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/legacytx/transactionrecord"
)

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	version := m.config.Transaction.Version
	if c.IsSet("tx-version") {
		v := c.Int("tx-version")
		if v < math.MinInt32 || v > math.MaxInt32 {
			return errors.Errorf("tx-version: %d is out of range", v)
		}
		version = int32(v)
	}

	lockTime := m.config.Transaction.LockTime
	if c.IsSet("lock-time") {
		l := c.Uint64("lock-time")
		if l > math.MaxUint32 {
			return errors.Errorf("lock-time: %d is out of range", l)
		}
		lockTime = uint32(l)
	}

	tx := transactionrecord.NewBuilder().
		Version(version).
		LockTime(lockTime).
		Build()

	if m.verbose {
		fmt.Fprintf(m.e, "%s\n", tx)
	}

	n := printEncoded(m.w, tx)
	m.log.Infof("encode: version: %d  lock time: %d  bytes: %d", version, lockTime, n)

	return nil
}
