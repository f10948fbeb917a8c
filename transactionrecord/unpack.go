// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/bitmark-inc/legacytx/fault"
)

// MinimumPackedLength - shortest byte slice that Unpack accepts
const MinimumPackedLength = marshalutil.Uint32Size + 1 + 1 + marshalutil.Uint32Size

// Unpack - turn a byte slice into a transaction
//
// Layout (fixed width, anything after byte 10 is ignored):
//   0  4  version       (little endian, signed)
//   4  1  input count
//   5  1  output count
//   6  4  lock_time     (little endian, unsigned)
//
// inputs and outputs are created as defaults, their data is not
// present in the record.  Every short read is ErrInvalidTransaction.
//
// also returns the number of bytes consumed
func (record Packed) Unpack() (t *LegacyTransaction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			t = nil
			n = 0
			e = fault.ErrInvalidTransaction
		}
	}()

	if len(record) < MinimumPackedLength {
		return nil, 0, fault.ErrInvalidTransaction
	}

	marshalUtil := marshalutil.New([]byte(record))

	version, err := marshalUtil.ReadUint32()
	if nil != err {
		return nil, 0, fault.ErrInvalidTransaction
	}

	inputCount, err := marshalUtil.ReadByte()
	if nil != err {
		return nil, 0, fault.ErrInvalidTransaction
	}
	inputs := make([]TxInput, inputCount)
	for i := range inputs {
		inputs[i] = defaultInput()
	}

	outputCount, err := marshalUtil.ReadByte()
	if nil != err {
		return nil, 0, fault.ErrInvalidTransaction
	}
	outputs := make([]TxOutput, outputCount)
	for i := range outputs {
		outputs[i] = defaultOutput()
	}

	lockTime, err := marshalUtil.ReadUint32()
	if nil != err {
		return nil, 0, fault.ErrInvalidTransaction
	}

	tx := &LegacyTransaction{
		Version:  int32(version),
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: lockTime,
	}
	return tx, marshalUtil.ReadOffset(), nil
}

// FromBytes - unpack a transaction, discarding the consumed count
func FromBytes(data []byte) (*LegacyTransaction, error) {
	tx, _, err := Packed(data).Unpack()
	return tx, err
}

// zero txid, vout 0, no script, final sequence
func defaultInput() TxInput {
	return NewTxInput(NewOutPoint([TxIdLength]byte{}, 0), []byte{}, DefaultSequence)
}

// zero value, no script
func defaultOutput() TxOutput {
	return NewTxOutput(0, []byte{})
}
