// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/legacytx/cmdline"
	"github.com/bitmark-inc/legacytx/fault"
	"github.com/bitmark-inc/legacytx/point"
	"github.com/bitmark-inc/legacytx/transactionrecord"
	"github.com/bitmark-inc/legacytx/util"
)

// the value assumed to be held by the spent output in the fee analysis
const demoInputValue = 100000000

func runDemo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	demonstrate(m.w, m.log)
	return nil
}

// write every demonstration section to the handle
func demonstrate(handle io.Writer, log *logger.L) {
	sections := []struct {
		title string
		run   func(io.Writer)
	}{
		{"Points", demoPoints},
		{"Transaction Builder", demoBuilder},
		{"Argument Parsing", demoParsing},
		{"Packing and Unpacking", demoPacking},
		{"Errors", demoErrors},
		{"Payment With Change", demoPayment},
	}

	for i, s := range sections {
		if 0 != i {
			fmt.Fprintln(handle)
		}
		fmt.Fprintf(handle, "=== %s ===\n", s.title)
		s.run(handle)
		log.Debugf("demo: section: %s", s.title)
	}
}

func demoPoints(w io.Writer) {
	fmt.Fprintf(w, "integer point: %s\n", point.New[int32](10, 20))
	fmt.Fprintf(w, "float point: %s\n", point.New(3.14, 2.71))
	fmt.Fprintf(w, "string point: %s\n", point.New("x", "y"))

	origin := point.New[int32](0, 0)
	p := point.New[int32](3, 4)
	fmt.Fprintf(w, "manhattan distance %s to %s: %d\n", origin, p, point.ManhattanDistance(origin, p))

	originF := point.New(0.0, 0.0)
	pF := point.New(3.0, 4.0)
	fmt.Fprintf(w, "distance %s to %s: %.2f\n", originF, pF, point.Distance(originF, pF))

	a := point.New[int32](1, 2)
	b := point.New[int32](1, 2)
	c := point.New[int32](2, 1)
	fmt.Fprintf(w, "%s == %s: %t\n", a, b, point.Equal(a, b))
	fmt.Fprintf(w, "%s == %s: %t\n", a, c, point.Equal(a, c))
}

func demoBuilder(w io.Writer) {
	input := transactionrecord.NewTxInput(
		transactionrecord.NewOutPoint(filled(0xaa), 0),
		[]byte{0x76, 0xa9, 0x14},
		0xffffffff,
	)
	output := transactionrecord.NewTxOutput(50000000, []byte{0x76, 0xa9, 0x14, 0x88, 0xac})

	single := transactionrecord.NewBuilder().
		Version(2).
		AddInput(input).
		AddOutput(output).
		LockTime(500000).
		Build()
	fmt.Fprintf(w, "single input and output:\n%s\n", single)

	input2 := transactionrecord.NewTxInput(
		transactionrecord.NewOutPoint(filled(0xbb), 1),
		[]byte{0x47, 0x30, 0x44},
		0xfffffffe,
	)
	output2 := transactionrecord.NewTxOutput(25000000, []byte{0x00, 0x14})

	multiple := transactionrecord.NewBuilder().
		Version(1).
		AddInput(input).
		AddInput(input2).
		AddOutput(output).
		AddOutput(output2).
		LockTime(0).
		Build()
	fmt.Fprintf(w, "two inputs and outputs:\n%s\n", multiple)

	fmt.Fprintf(w, "default:\n%s\n", transactionrecord.DefaultBuilder().Build())
}

func demoParsing(w io.Writer) {
	valid := [][]string{
		{"send", "100000", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"},
		{"balance"},
	}
	for _, args := range valid {
		command, err := cmdline.ParseArgs(args)
		if nil != err {
			fmt.Fprintf(w, "%q: unexpected error: %s\n", args, err)
			continue
		}
		fmt.Fprintf(w, "%q: %s\n", args, command)
	}

	invalid := [][]string{
		{},
		{"unknown"},
		{"send"},
		{"send", "invalid", "address"},
	}
	for _, args := range invalid {
		command, err := cmdline.ParseArgs(args)
		if nil == err {
			fmt.Fprintf(w, "%q: unexpected success: %s\n", args, command)
			continue
		}
		fmt.Fprintf(w, "%q: %s\n", args, err)
	}
}

func demoPacking(w io.Writer) {
	tx := transactionrecord.NewBuilder().
		Version(1).
		AddInput(transactionrecord.NewTxInput(
			transactionrecord.NewOutPoint(filled(0xcc), 0),
			[]byte{0x76, 0xa9},
			0xffffffff,
		)).
		AddOutput(transactionrecord.NewTxOutput(100000000, []byte{0x76, 0xa9, 0x14, 0x88, 0xac})).
		LockTime(0).
		Build()
	fmt.Fprintf(w, "transaction:\n%s\n", tx)

	fmt.Fprint(w, "packed: ")
	n := printEncoded(w, tx)
	fmt.Fprintf(w, "packed length: %d\n", n)

	header := []byte{
		0x01, 0x00, 0x00, 0x00, // version
		0x01,                   // inputs
		0x01,                   // outputs
		0x00, 0x00, 0x00, 0x00, // lock time
	}
	if unpacked, err := transactionrecord.FromBytes(header); nil != err {
		fmt.Fprintf(w, "unpack %x: unexpected error: %s\n", header, err)
	} else {
		fmt.Fprintf(w, "unpack %x:\n%s\n", header, unpacked)
	}

	short := []byte{0x01, 0x00}
	if _, err := transactionrecord.FromBytes(short); nil != err {
		fmt.Fprintf(w, "unpack %x: %s\n", short, err)
	} else {
		fmt.Fprintf(w, "unpack %x: unexpected success\n", short)
	}
}

func demoErrors(w io.Writer) {
	errorList := []error{
		fault.ErrInvalidTransaction,
		fault.ErrInvalidScript,
		fault.ErrInvalidAmount,
		fault.NewParseError("Custom parse error"),
	}
	for _, err := range errorList {
		fmt.Fprintf(w, "%s: %s\n", fault.Kind(err), err)
		fmt.Fprintf(w, "  %#v\n", err)
	}
}

// spend one P2PKH output paying a P2PKH recipient with P2WPKH change
func demoPayment(w io.Writer) {
	previous := [transactionrecord.TxIdLength]byte{
		0x6f, 0x73, 0x08, 0xbb, 0xe9, 0x5c, 0x0f, 0x6e,
		0x13, 0x01, 0xdd, 0x73, 0xa8, 0xda, 0x77, 0xd2,
		0x15, 0x5b, 0x07, 0x73, 0xbc, 0x29, 0x7a, 0xc4,
		0x7f, 0x9c, 0xd7, 0x38, 0x00, 0x10, 0x00, 0x00,
	}

	tx := transactionrecord.NewBuilder().
		Version(2).
		AddInput(transactionrecord.NewTxInput(
			transactionrecord.NewOutPoint(previous, 0),
			signatureScript(),
			transactionrecord.DefaultSequence,
		)).
		AddOutput(transactionrecord.NewTxOutput(75000000, payToPubKeyHash(0x89))).
		AddOutput(transactionrecord.NewTxOutput(24990000, payToWitnessPubKeyHash(0xab))).
		LockTime(0).
		Build()
	fmt.Fprintf(w, "%s\n", tx)

	inputValue := uint64(demoInputValue)
	outputValue := tx.TotalOutputValue()
	fee := inputValue - outputValue

	fmt.Fprintf(w, "input value:  %d satoshis (%s BTC)\n", inputValue, util.FormatCoins(inputValue))
	fmt.Fprintf(w, "output value: %d satoshis (%s BTC)\n", outputValue, util.FormatCoins(outputValue))
	fmt.Fprintf(w, "fee:          %d satoshis (%s BTC)\n", fee, util.FormatCoins(fee))

	fmt.Fprint(w, "packed: ")
	n := printEncoded(w, tx)
	fmt.Fprintf(w, "packed length: %d\n", n)

	args := []string{"send", "75000000", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"}
	if command, err := cmdline.ParseArgs(args); nil != err {
		fmt.Fprintf(w, "%q: unexpected error: %s\n", args, err)
	} else {
		fmt.Fprintf(w, "%q: %s\n", args, command)
	}
}

func filled(b byte) [transactionrecord.TxIdLength]byte {
	var id [transactionrecord.TxIdLength]byte
	for i := range id {
		id[i] = b
	}
	return id
}

// DER shaped signature with SIGHASH_ALL followed by a compressed public key
func signatureScript() []byte {
	script := make([]byte, 0, 107)
	script = append(script, 0x47, 0x30, 0x44, 0x02, 0x20)
	script = append(script, bytes.Repeat([]byte{0x12}, 32)...)
	script = append(script, 0x02, 0x20)
	script = append(script, bytes.Repeat([]byte{0x34}, 32)...)
	script = append(script, 0x01)       // SIGHASH_ALL
	script = append(script, 0x21, 0x03) // push 33, compressed key prefix
	script = append(script, bytes.Repeat([]byte{0x56}, 32)...)
	return script
}

// OP_DUP OP_HASH160 <20 bytes> OP_EQUALVERIFY OP_CHECKSIG
func payToPubKeyHash(fill byte) []byte {
	script := []byte{0x76, 0xa9, 0x14}
	script = append(script, bytes.Repeat([]byte{fill}, 20)...)
	return append(script, 0x88, 0xac)
}

// OP_0 <20 bytes>
func payToWitnessPubKeyHash(fill byte) []byte {
	script := []byte{0x00, 0x14}
	return append(script, bytes.Repeat([]byte{fill}, 20)...)
}
