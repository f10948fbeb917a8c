// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/legacytx/fault"
)

// command names
const (
	SendCommand    = "send"
	BalanceCommand = "balance"
)

// parse error messages
const (
	noCommandMessage      = "No command provided"
	sendArgumentsMessage  = "Send command requires amount and address"
	unknownCommandMessage = "Unknown command: "
)

// Command - one of Send or Balance
type Command interface {
	Name() string
	String() string
	isCommand()
}

// Send - transfer an amount in satoshis to an address
type Send struct {
	Amount  uint64 `json:"amount,string"`
	Address string `json:"address"`
}

// Balance - show the wallet balance
type Balance struct{}

// Name - the command word
func (Send) Name() string { return SendCommand }

// Name - the command word
func (Balance) Name() string { return BalanceCommand }

// String - for the fmt package
func (s Send) String() string {
	return fmt.Sprintf("Send { amount: %d, address: %s }", s.Amount, s.Address)
}

// String - for the fmt package
func (Balance) String() string {
	return "Balance"
}

func (Send) isCommand()    {}
func (Balance) isCommand() {}

// ParseArgs - turn an argument list (program name already removed)
// into a command
func ParseArgs(args []string) (Command, error) {
	if 0 == len(args) {
		return nil, fault.NewParseError(noCommandMessage)
	}

	switch args[0] {

	case SendCommand:
		if len(args) < 3 {
			return nil, fault.NewParseError(sendArgumentsMessage)
		}
		amount, err := parseAmount(args[1])
		if nil != err {
			return nil, err
		}
		return Send{
			Amount:  amount,
			Address: args[2],
		}, nil

	case BalanceCommand:
		return Balance{}, nil

	default:
		return nil, fault.NewParseError(unknownCommandMessage + args[0])
	}
}

// decimal uint64, a single '+' is allowed only directly before a digit
func parseAmount(s string) (uint64, error) {
	if len(s) > 1 && '+' == s[0] && s[1] >= '0' && s[1] <= '9' {
		s = s[1:]
	}
	amount, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidAmount
	}
	return amount, nil
}
