// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ForceProtocol/TokenSaleContracts/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidArgumentType  = fault.InvalidError("argument type must be one of address, addresses, amount, tokens, uint or bytes")
	ErrInvalidTransactionID = fault.InvalidError("transaction id is not a number")
	ErrMissingArgument      = fault.InvalidError("missing argument")
	ErrNoSender             = fault.InvalidError("--sender is required")
)
