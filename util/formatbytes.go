// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// bytes per line of generated Go source
const bytesPerLine = 8

// FormatBytes - render data as a Go byte slice literal, used by tests
// to print the expected value for a packed record
func FormatBytes(name string, data []byte) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" := []byte{")
	for i := 0; i < len(data); i += 1 {
		if 0 == i%bytesPerLine {
			b.WriteString("\n\t")
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "0x%02x,", data[i])
	}
	b.WriteString("\n}")
	return b.String()
}
