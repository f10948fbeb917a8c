// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/iotaledger/hive.go/stringify"
)

// byte sizes and default field values
const (
	TxIdLength = chainhash.HashSize // raw bytes in a transaction id

	DefaultVersion  = int32(1)           // version of a freshly created builder
	DefaultLockTime = uint32(0)          // lock time of a freshly created builder
	DefaultSequence = uint32(0xffffffff) // sequence of a decoded input
)

// Packed - packed records are just a byte slice
type Packed []byte

// Serializer - anything that can produce its packed byte form
type Serializer interface {
	Serialize() []byte
}

// Script - raw script bytes, displayed as hex
type Script []byte

// OutPoint - reference to an output of a previous transaction
type OutPoint struct {
	TxId chainhash.Hash // 32 raw bytes, hex is byte reversed
	Vout uint32         // output index
}

// TxInput - a spend of a previous output
type TxInput struct {
	PreviousOutput OutPoint `json:"previousOutput"`
	ScriptSig      Script   `json:"scriptSig"` // hex: unlocking script
	Sequence       uint32   `json:"sequence"`
}

// TxOutput - an amount locked to a script
type TxOutput struct {
	Value        uint64 `json:"value,string"` // satoshis
	ScriptPubKey Script `json:"scriptPubKey"` // hex: locking script
}

// LegacyTransaction - the unpacked legacy transaction structure
type LegacyTransaction struct {
	Version  int32      `json:"version"`
	Inputs   []TxInput  `json:"inputs"`
	Outputs  []TxOutput `json:"outputs"`
	LockTime uint32     `json:"lockTime"`
}

// NewOutPoint - create an out point, fields are stored verbatim
func NewOutPoint(txId [TxIdLength]byte, vout uint32) OutPoint {
	return OutPoint{
		TxId: chainhash.Hash(txId),
		Vout: vout,
	}
}

// NewTxInput - create an input, fields are stored verbatim
func NewTxInput(previousOutput OutPoint, scriptSig []byte, sequence uint32) TxInput {
	return TxInput{
		PreviousOutput: previousOutput,
		ScriptSig:      scriptSig,
		Sequence:       sequence,
	}
}

// NewTxOutput - create an output, fields are stored verbatim
func NewTxOutput(value uint64, scriptPubKey []byte) TxOutput {
	return TxOutput{
		Value:        value,
		ScriptPubKey: scriptPubKey,
	}
}

// MarshalJSON - txid in the usual byte reversed hex
func (o OutPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(outPointJSON{
		TxId: o.TxId.String(),
		Vout: o.Vout,
	})
}

// UnmarshalJSON - txid from the usual byte reversed hex
func (o *OutPoint) UnmarshalJSON(b []byte) error {
	var j outPointJSON
	if err := json.Unmarshal(b, &j); nil != err {
		return err
	}
	h, err := chainhash.NewHashFromStr(j.TxId)
	if nil != err {
		return err
	}
	o.TxId = *h
	o.Vout = j.Vout
	return nil
}

type outPointJSON struct {
	TxId string `json:"txId"`
	Vout uint32 `json:"vout"`
}

// Equal - field-wise comparison
func (o OutPoint) Equal(other OutPoint) bool {
	return o.TxId == other.TxId && o.Vout == other.Vout
}

// String - every field for diagnostics
func (o OutPoint) String() string {
	return stringify.Struct("OutPoint",
		stringify.StructField("txid", o.TxId.String()),
		stringify.StructField("vout", o.Vout),
	)
}

// Equal - field-wise comparison, nil and empty scripts are the same
func (i TxInput) Equal(other TxInput) bool {
	return i.PreviousOutput.Equal(other.PreviousOutput) &&
		bytes.Equal(i.ScriptSig, other.ScriptSig) &&
		i.Sequence == other.Sequence
}

// Copy - deep copy, the script is not shared
func (i TxInput) Copy() TxInput {
	return TxInput{
		PreviousOutput: i.PreviousOutput,
		ScriptSig:      i.ScriptSig.Copy(),
		Sequence:       i.Sequence,
	}
}

// String - every field for diagnostics
func (i TxInput) String() string {
	return stringify.Struct("TxInput",
		stringify.StructField("previous_output", i.PreviousOutput.String()),
		stringify.StructField("script_sig", i.ScriptSig.String()),
		stringify.StructField("sequence", fmt.Sprintf("0x%08x", i.Sequence)),
	)
}

// Equal - field-wise comparison, nil and empty scripts are the same
func (o TxOutput) Equal(other TxOutput) bool {
	return o.Value == other.Value && bytes.Equal(o.ScriptPubKey, other.ScriptPubKey)
}

// Copy - deep copy, the script is not shared
func (o TxOutput) Copy() TxOutput {
	return TxOutput{
		Value:        o.Value,
		ScriptPubKey: o.ScriptPubKey.Copy(),
	}
}

// String - every field for diagnostics
func (o TxOutput) String() string {
	return stringify.Struct("TxOutput",
		stringify.StructField("value", o.Value),
		stringify.StructField("script_pubkey", o.ScriptPubKey.String()),
	)
}

// Equal - field-wise comparison, order of inputs and outputs matters
func (tx *LegacyTransaction) Equal(other *LegacyTransaction) bool {
	if nil == tx || nil == other {
		return tx == other
	}
	if tx.Version != other.Version || tx.LockTime != other.LockTime {
		return false
	}
	if len(tx.Inputs) != len(other.Inputs) || len(tx.Outputs) != len(other.Outputs) {
		return false
	}
	for i := range tx.Inputs {
		if !tx.Inputs[i].Equal(other.Inputs[i]) {
			return false
		}
	}
	for i := range tx.Outputs {
		if !tx.Outputs[i].Equal(other.Outputs[i]) {
			return false
		}
	}
	return true
}

// Copy - deep copy of the whole transaction
func (tx *LegacyTransaction) Copy() *LegacyTransaction {
	inputs := make([]TxInput, len(tx.Inputs))
	for i, input := range tx.Inputs {
		inputs[i] = input.Copy()
	}
	outputs := make([]TxOutput, len(tx.Outputs))
	for i, output := range tx.Outputs {
		outputs[i] = output.Copy()
	}
	return &LegacyTransaction{
		Version:  tx.Version,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: tx.LockTime,
	}
}

// TotalOutputValue - sum of all output values in satoshis
func (tx *LegacyTransaction) TotalOutputValue() uint64 {
	total := uint64(0)
	for _, output := range tx.Outputs {
		total += output.Value
	}
	return total
}

// String - multi-line display with one line per input and output
func (tx *LegacyTransaction) String() string {
	var b strings.Builder
	b.WriteString("LegacyTransaction {\n")
	fmt.Fprintf(&b, "  version: %d\n", tx.Version)
	b.WriteString("  inputs: [\n")
	for _, input := range tx.Inputs {
		fmt.Fprintf(&b, "    %s\n", input.oneLine())
	}
	b.WriteString("  ]\n")
	b.WriteString("  outputs: [\n")
	for _, output := range tx.Outputs {
		fmt.Fprintf(&b, "    %s\n", output.oneLine())
	}
	b.WriteString("  ]\n")
	fmt.Fprintf(&b, "  lock_time: %d\n", tx.LockTime)
	b.WriteString("}")
	return b.String()
}

func (i TxInput) oneLine() string {
	return fmt.Sprintf("TxInput { previous_output: OutPoint { txid: %s, vout: %d }, script_sig: %x, sequence: 0x%08x }",
		i.PreviousOutput.TxId, i.PreviousOutput.Vout, []byte(i.ScriptSig), i.Sequence)
}

func (o TxOutput) oneLine() string {
	return fmt.Sprintf("TxOutput { value: %d, script_pubkey: %x }", o.Value, []byte(o.ScriptPubKey))
}

// Copy - independent copy of the script bytes
func (s Script) Copy() Script {
	if nil == s {
		return nil
	}
	c := make(Script, len(s))
	copy(c, s)
	return c
}

// String - hex form of the script
func (s Script) String() string {
	return hex.EncodeToString(s)
}

// MarshalText - convert a script to its hex JSON form
func (s Script) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(s)))
	hex.Encode(b, s)
	return b, nil
}

// UnmarshalText - convert a hex JSON form to a script
func (s *Script) UnmarshalText(text []byte) error {
	b := make([]byte, hex.DecodedLen(len(text)))
	n, err := hex.Decode(b, text)
	if nil != err {
		return err
	}
	*s = b[:n]
	return nil
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}

// String - hex form of the packed bytes
func (record Packed) String() string {
	return hex.EncodeToString(record)
}
