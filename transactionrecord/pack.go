// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/iotaledger/hive.go/marshalutil"
)

// SerializedLength - bytes produced by Pack
const SerializedLength = 2 * marshalutil.Uint32Size

// Pack - version followed by lock time, both 4 byte little endian
//
// Layout:
//   0  4  version    (signed)
//   4  4  lock_time  (unsigned)
//
// NOTE: inputs and outputs are never written, so transactions that
//       differ only in inputs/outputs pack identically.  The result is
//       not a network transaction and Unpack cannot read it back.
func (tx *LegacyTransaction) Pack() Packed {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteUint32(uint32(tx.Version))
	marshalUtil.WriteUint32(tx.LockTime)
	return Packed(marshalUtil.Bytes())
}

// Serialize - the Serializer form of Pack
func (tx *LegacyTransaction) Serialize() []byte {
	return tx.Pack()
}
