// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cmdline - split a wallet command line into a command
//
// Accepts:
//   send <amount> <address>  - amount is a decimal uint64 (one leading + allowed),
//                            address is not checked
//   balance                  - no arguments
//
// Note:
//   Tokens beyond those a command needs are ignored.
//
// Returns:
//   Send{Amount, Address} or Balance{}
//   fault.ParseError       - no command, missing send arguments, unknown command
//   fault.ErrInvalidAmount - amount is not a decimal uint64
package cmdline
