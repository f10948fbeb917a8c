// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/legacytx/transactionrecord"
	"github.com/bitmark-inc/legacytx/util"
)

// test the packer on the single input/output transaction
func TestPackScenarioOne(t *testing.T) {
	tx := makeScenarioOne()

	expected := []byte{
		0x02, 0x00, 0x00, 0x00, 0x20, 0xa1, 0x07, 0x00,
	}

	packed := tx.Pack()
	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", util.FormatBytes("expected", packed))
	}

	if !bytes.Equal(tx.Serialize(), expected) {
		t.Errorf("serialize: %x  expected: %x", tx.Serialize(), expected)
	}
}

func TestPackLength(t *testing.T) {
	transactions := []*transactionrecord.LegacyTransaction{
		transactionrecord.DefaultBuilder().Build(),
		makeScenarioOne(),
		transactionrecord.NewBuilder().
			AddInput(makeInputOne()).
			AddInput(makeInputTwo()).
			AddOutput(makeOutputOne()).
			AddOutput(makeOutputTwo()).
			Build(),
		{Version: -1, LockTime: 0xffffffff},
	}

	for i, tx := range transactions {
		if n := len(tx.Pack()); transactionrecord.SerializedLength != n {
			t.Errorf("%d: packed length: %d  expected: %d", i, n, transactionrecord.SerializedLength)
		}
	}
}

func TestPackLayout(t *testing.T) {
	items := []struct {
		version  int32
		lockTime uint32
		expected []byte
	}{
		{1, 0, []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{-1, 1, []byte{0xff, 0xff, 0xff, 0xff, 0x01, 0x00, 0x00, 0x00}},
		{-2147483648, 0xffffffff, []byte{0x00, 0x00, 0x00, 0x80, 0xff, 0xff, 0xff, 0xff}},
		{0x12345678, 0x9abcdef0, []byte{0x78, 0x56, 0x34, 0x12, 0xf0, 0xde, 0xbc, 0x9a}},
	}

	for i, item := range items {
		tx := transactionrecord.NewBuilder().Version(item.version).LockTime(item.lockTime).Build()
		packed := tx.Pack()
		if !bytes.Equal(packed, item.expected) {
			t.Errorf("%d: pack record: %x  expected: %x", i, packed, item.expected)
		}
	}
}

// inputs and outputs do not take part in packing
func TestPackIgnoresInputsAndOutputs(t *testing.T) {
	bare := transactionrecord.NewBuilder().Version(2).LockTime(500000).Build()
	full := makeScenarioOne()

	if !bytes.Equal(bare.Pack(), full.Pack()) {
		t.Errorf("bare: %x  full: %x", bare.Pack(), full.Pack())
	}
}

func TestPackedText(t *testing.T) {
	packed := makeScenarioOne().Pack()

	text, err := packed.MarshalText()
	if nil != err {
		t.Fatalf("marshal text error: %s", err)
	}
	if "0200000020a10700" != string(text) {
		t.Errorf("text: %s  expected: 0200000020a10700", text)
	}
	if "0200000020a10700" != packed.String() {
		t.Errorf("string: %s  expected: 0200000020a10700", packed)
	}

	var recovered transactionrecord.Packed
	err = recovered.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal text error: %s", err)
	}
	if !bytes.Equal(recovered, packed) {
		t.Errorf("recovered: %x  expected: %x", recovered, packed)
	}
}
