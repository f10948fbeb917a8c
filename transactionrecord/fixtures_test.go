// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"

	"github.com/bitmark-inc/legacytx/transactionrecord"
)

// scripts used in several tests
var (
	p2pkhPrefix  = []byte{0x76, 0xa9, 0x14}
	p2pkhScript  = []byte{0x76, 0xa9, 0x14, 0x88, 0xac}
	p2wpkhPrefix = []byte{0x00, 0x14}
)

func filledTxId(b byte) [transactionrecord.TxIdLength]byte {
	var txId [transactionrecord.TxIdLength]byte
	copy(txId[:], bytes.Repeat([]byte{b}, transactionrecord.TxIdLength))
	return txId
}

// single input spending [0xaa]*32:0
func makeInputOne() transactionrecord.TxInput {
	return transactionrecord.NewTxInput(
		transactionrecord.NewOutPoint(filledTxId(0xaa), 0),
		p2pkhPrefix,
		0xffffffff,
	)
}

// second input spending [0xbb]*32:1
func makeInputTwo() transactionrecord.TxInput {
	return transactionrecord.NewTxInput(
		transactionrecord.NewOutPoint(filledTxId(0xbb), 1),
		[]byte{0x47, 0x30, 0x44},
		0xfffffffe,
	)
}

// 0.5 BTC to a P2PKH script
func makeOutputOne() transactionrecord.TxOutput {
	return transactionrecord.NewTxOutput(50000000, p2pkhScript)
}

// 0.25 BTC to a P2WPKH script
func makeOutputTwo() transactionrecord.TxOutput {
	return transactionrecord.NewTxOutput(25000000, p2wpkhPrefix)
}

// version 2, one input, one output, lock time 500000
func makeScenarioOne() *transactionrecord.LegacyTransaction {
	return transactionrecord.NewBuilder().
		Version(2).
		AddInput(makeInputOne()).
		AddOutput(makeOutputOne()).
		LockTime(500000).
		Build()
}
