// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Every error belongs to exactly one class so that a caller can
// decide what to do from the class alone:
//
//   InvalidError       bad arguments or construction parameters
//   AuthorisationError caller lacks ownership, admin or membership rights
//   StateError         operation attempted outside its valid phase
//   CapacityError      a cap, limit or balance would be exceeded
//   ExistsError        the action was already done
//   NotFoundError      the item is not present
//   ProcessError       internal failure
package fault
