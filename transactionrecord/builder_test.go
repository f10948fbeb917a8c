// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/legacytx/transactionrecord"
)

func TestBuildSingleInputOutput(t *testing.T) {
	tx := makeScenarioOne()

	assert.Equal(t, int32(2), tx.Version, "wrong version")
	assert.Equal(t, uint32(500000), tx.LockTime, "wrong lock time")
	assert.Equal(t, 1, len(tx.Inputs), "wrong input count")
	assert.Equal(t, 1, len(tx.Outputs), "wrong output count")

	input := tx.Inputs[0]
	assert.Equal(t, filledTxId(0xaa), [32]byte(input.PreviousOutput.TxId), "wrong txid")
	assert.Equal(t, uint32(0), input.PreviousOutput.Vout, "wrong vout")
	assert.Equal(t, []byte{0x76, 0xa9, 0x14}, []byte(input.ScriptSig), "wrong script sig")
	assert.Equal(t, uint32(0xffffffff), input.Sequence, "wrong sequence")

	output := tx.Outputs[0]
	assert.Equal(t, uint64(50000000), output.Value, "wrong value")
	assert.Equal(t, []byte{0x76, 0xa9, 0x14, 0x88, 0xac}, []byte(output.ScriptPubKey), "wrong script pubkey")
}

func TestBuildKeepsInsertionOrder(t *testing.T) {
	tx := transactionrecord.NewBuilder().
		Version(1).
		AddInput(makeInputOne()).
		AddOutput(makeOutputOne()).
		AddInput(makeInputTwo()).
		AddOutput(makeOutputTwo()).
		LockTime(0).
		Build()

	expectedInputs := []transactionrecord.TxInput{makeInputOne(), makeInputTwo()}
	expectedOutputs := []transactionrecord.TxOutput{makeOutputOne(), makeOutputTwo()}

	if len(expectedInputs) != len(tx.Inputs) {
		t.Fatalf("inputs: %d  expected: %d", len(tx.Inputs), len(expectedInputs))
	}
	for i, input := range tx.Inputs {
		if !input.Equal(expectedInputs[i]) {
			t.Errorf("input[%d]: %v  expected: %v", i, input, expectedInputs[i])
		}
	}

	if len(expectedOutputs) != len(tx.Outputs) {
		t.Fatalf("outputs: %d  expected: %d", len(tx.Outputs), len(expectedOutputs))
	}
	for i, output := range tx.Outputs {
		if !output.Equal(expectedOutputs[i]) {
			t.Errorf("output[%d]: %v  expected: %v", i, output, expectedOutputs[i])
		}
	}
}

func TestBuildLastWriteWins(t *testing.T) {
	tx := transactionrecord.NewBuilder().
		LockTime(7).
		Version(3).
		Version(-4).
		LockTime(0xfffffffe).
		Build()

	assert.Equal(t, int32(-4), tx.Version, "wrong version")
	assert.Equal(t, uint32(0xfffffffe), tx.LockTime, "wrong lock time")
	assert.Empty(t, tx.Inputs, "unexpected inputs")
	assert.Empty(t, tx.Outputs, "unexpected outputs")
}

func TestBuildDefault(t *testing.T) {
	builders := []*transactionrecord.Builder{
		transactionrecord.DefaultBuilder(),
		transactionrecord.NewBuilder(),
	}

	for i, b := range builders {
		tx := b.Build()
		if 1 != tx.Version {
			t.Errorf("%d: version: %d  expected: 1", i, tx.Version)
		}
		if 0 != len(tx.Inputs) {
			t.Errorf("%d: inputs: %d  expected: 0", i, len(tx.Inputs))
		}
		if 0 != len(tx.Outputs) {
			t.Errorf("%d: outputs: %d  expected: 0", i, len(tx.Outputs))
		}
		if 0 != tx.LockTime {
			t.Errorf("%d: lock time: %d  expected: 0", i, tx.LockTime)
		}
	}
}

// a builder reused after Build must not alias the first transaction
func TestBuildResetsBuilder(t *testing.T) {
	b := transactionrecord.NewBuilder().
		Version(2).
		AddInput(makeInputOne()).
		AddOutput(makeOutputOne()).
		LockTime(9)

	first := b.Build()

	second := b.AddInput(makeInputTwo()).Build()

	assert.Equal(t, 1, len(first.Inputs), "first transaction changed")
	assert.True(t, first.Inputs[0].Equal(makeInputOne()), "first transaction input changed")

	assert.Equal(t, transactionrecord.DefaultVersion, second.Version, "second version not default")
	assert.Equal(t, transactionrecord.DefaultLockTime, second.LockTime, "second lock time not default")
	assert.Equal(t, 1, len(second.Inputs), "wrong second input count")
	assert.Equal(t, 0, len(second.Outputs), "wrong second output count")
}
