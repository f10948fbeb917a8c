// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// Builder - staging area for a LegacyTransaction
//
// every setter returns the builder so calls can be chained:
//
//   tx := transactionrecord.NewBuilder().
//           Version(2).
//           AddInput(input).
//           AddOutput(output).
//           LockTime(500000).
//           Build()
//
// Build hands the staged state to the caller and leaves the builder
// back in its default state; a builder is normally discarded after
// Build.
type Builder struct {
	version  int32
	inputs   []TxInput
	outputs  []TxOutput
	lockTime uint32
}

// NewBuilder - a builder in the default state
func NewBuilder() *Builder {
	return DefaultBuilder()
}

// DefaultBuilder - version 1, no inputs, no outputs, lock time 0
func DefaultBuilder() *Builder {
	return &Builder{
		version:  DefaultVersion,
		inputs:   make([]TxInput, 0),
		outputs:  make([]TxOutput, 0),
		lockTime: DefaultLockTime,
	}
}

// Version - set the transaction version, last write wins
func (b *Builder) Version(version int32) *Builder {
	b.version = version
	return b
}

// AddInput - append an input, insertion order is kept
func (b *Builder) AddInput(input TxInput) *Builder {
	b.inputs = append(b.inputs, input)
	return b
}

// AddOutput - append an output, insertion order is kept
func (b *Builder) AddOutput(output TxOutput) *Builder {
	b.outputs = append(b.outputs, output)
	return b
}

// LockTime - set the lock time, last write wins
func (b *Builder) LockTime(lockTime uint32) *Builder {
	b.lockTime = lockTime
	return b
}

// Build - assemble the transaction
//
// never fails, there are no cross-field checks
func (b *Builder) Build() *LegacyTransaction {
	tx := &LegacyTransaction{
		Version:  b.version,
		Inputs:   b.inputs,
		Outputs:  b.outputs,
		LockTime: b.lockTime,
	}
	*b = *DefaultBuilder()
	return tx
}
