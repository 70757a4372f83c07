// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available so os.getenv can supply values from
// the environment; the file must return a single table.  Amounts are
// given as decimal strings in whole units and times in RFC 3339.
package configuration
