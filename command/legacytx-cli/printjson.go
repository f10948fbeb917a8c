// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/legacytx/transactionrecord"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// print the packed hex of anything that can serialize itself
// and return the number of bytes
func printEncoded(handle io.Writer, s transactionrecord.Serializer) int {
	packed := s.Serialize()
	fmt.Fprintf(handle, "%x\n", packed)
	return len(packed)
}
