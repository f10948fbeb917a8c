// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - legacy transaction records
//
// Value types (OutPoint, TxInput, TxOutput), the LegacyTransaction they
// make up, a Builder to assemble one and a simplified packed form.
//
// The packed form is not the network format: Pack writes only the
// version and lock time, while Unpack reads a fixed ten byte header
// that also carries one byte input and output counts.
package transactionrecord

//go:generate mockgen -destination=mocks/serializer.go -package=mocks github.com/bitmark-inc/legacytx/transactionrecord Serializer
