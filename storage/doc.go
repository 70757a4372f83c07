// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. address   = 20 byte principal (account or contract)
// 4. amount    = 32 byte big endian unsigned integer
// 5. count, id = big endian uint64 (8 bytes)
// 6. record    = RLP encoded structure
// 7. set       = membership set identifier: address ++ one byte tag
//
// Substrate:
//
//   K ++ address               - contract registry
//                                data: contract kind
//   X ++ address               - deployment nonce
//                                data: count
//   N ++ address               - native value balance
//                                data: amount
//   R ++ name                  - address book
//                                data: address
//
// Governance:
//
//   O ++ address               - current owner of a resource
//                                data: address
//   P ++ address               - paused flag
//                                data: 0x01
//   S ++ address               - contract state
//                                data: record
//
// Ledger:
//
//   B ++ dataCentre ++ holder  - balance
//                                data: amount
//   A ++ dataCentre ++ owner ++ spender
//                              - allowance
//                                data: amount
//   V ++ dataCentre ++ key     - generic value container (includes total supply)
//                                data: amount
//
// Membership:
//
//   Q ++ set                   - next count value to use for appending to the set
//                                data: count
//   L ++ set ++ count          - members in insertion order
//                                data: address
//   M ++ set ++ address        - position in the list, for delete
//                                data: count
//
// Wallet:
//
//   T ++ wallet ++ id          - proposed transaction
//                                data: record
//   C ++ wallet ++ id ++ owner - confirmation
//                                data: 0x01
//
// Escrow:
//
//   D ++ vault ++ investor     - deposited value
//                                data: amount
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
