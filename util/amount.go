// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
)

// SatoshiPerCoin - smallest units in one coin
const SatoshiPerCoin = 100000000

// FormatCoins - satoshis as a decimal coin amount with eight places
func FormatCoins(satoshis uint64) string {
	return fmt.Sprintf("%d.%08d", satoshis/SatoshiPerCoin, satoshis%SatoshiPerCoin)
}
