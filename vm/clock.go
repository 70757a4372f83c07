// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vm

import (
	"sync"
	"time"
)

// Clock - source of the current time, read once at the start of a call
type Clock interface {
	Now() time.Time
}

// SystemClock - wall clock time
type SystemClock struct{}

// Now - current UTC time
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// ManualClock - time only moves when told to
type ManualClock struct {
	sync.Mutex
	now time.Time
}

// NewManualClock - clock stopped at t
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

// Now - the current setting
func (c *ManualClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.now
}

// Set - jump to t
func (c *ManualClock) Set(t time.Time) {
	c.Lock()
	c.now = t
	c.Unlock()
}

// Advance - move forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.Lock()
	c.now = c.now.Add(d)
	c.Unlock()
}
