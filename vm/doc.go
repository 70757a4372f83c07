// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vm - the execution substrate for the sale contracts
//
// Every external call runs under one process wide lock inside a
// single storage transaction: it either commits all of its writes or
// none of them.  A contract calling another contract shares that
// transaction; the nested call is bracketed by a savepoint so that a
// caller which tolerates the failure (the wallet) keeps its own
// writes.
//
// Contracts are addresses registered with a kind.  Each kind has a
// method table so a call can also be described as an RLP payload and
// dispatched later, which is how the multi-signature wallet executes
// the actions it holds.
package vm
