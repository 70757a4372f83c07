// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vm

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
)

const maximumCallDepth = 16

// Context - one frame of a call
type Context struct {
	trx    storage.Transaction
	caller common.Address
	self   common.Address
	value  *uint256.Int
	now    time.Time
	depth  int
	events *[]Event
}

// Caller - principal that made this call
func (c *Context) Caller() common.Address { return c.caller }

// Self - principal executing this frame
func (c *Context) Self() common.Address { return c.self }

// Value - native value moved to Self by this call
func (c *Context) Value() *uint256.Int { return new(uint256.Int).Set(c.value) }

// Now - clock reading taken when the external call started
func (c *Context) Now() time.Time { return c.now }

// Trx - the transaction shared by every frame of the call
func (c *Context) Trx() storage.Transaction { return c.trx }

// Log - logging channel of the executing contract kind
func (c *Context) Log() *logger.L {
	if k, ok := lookupKind(KindOf(c.self)); ok && nil != k.log {
		return k.log
	}
	return globalData.log
}

// Execute - run fn as an external call made by sender
//
// all writes are committed if fn returns nil and discarded otherwise
func Execute(sender common.Address, fn func(*Context) error) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	events := make([]Event, 0, 8)
	ctx := &Context{
		trx:    trx,
		self:   sender,
		value:  uint256.NewInt(0),
		now:    globalData.clock.Now(),
		events: &events,
	}

	committed := false
	defer func() {
		if !committed {
			trx.Abort()
			statistics.aborted.Increment()
		}
	}()

	err = fn(ctx)
	if nil != err {
		globalData.log.Debugf("call from: %s  failed: %s", sender.Hex(), err)
		return err
	}

	committed = true
	err = trx.Commit()
	if nil != err {
		statistics.aborted.Increment()
		return err
	}
	statistics.committed.Increment()

	publish(events)
	return nil
}

// View - run read only queries without another call interleaving
func View(fn func() error) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	return fn()
}

// Now - time from the configured clock
func Now() time.Time {
	globalData.Lock()
	defer globalData.Unlock()
	if nil == globalData.clock {
		return time.Time{}
	}
	return globalData.clock.Now()
}

// Call - run fn as target with this frame's Self as the caller
//
// value moves from Self to target first; any error rolls back every
// write made since the call began, including the value transfer
func (c *Context) Call(target common.Address, value *uint256.Int, fn func(*Context) error) error {
	if c.depth >= maximumCallDepth {
		return fault.ErrCallDepth
	}
	if nil == value {
		value = uint256.NewInt(0)
	}

	mark := c.trx.Mark()
	raised := len(*c.events)

	inner := &Context{
		trx:    c.trx,
		caller: c.self,
		self:   target,
		value:  new(uint256.Int).Set(value),
		now:    c.now,
		depth:  c.depth + 1,
		events: c.events,
	}

	err := transfer(c.trx, c.self, target, value)
	if nil == err {
		err = fn(inner)
	}
	if nil != err {
		c.trx.Rollback(mark)
		*c.events = (*c.events)[:raised]
		return err
	}
	return nil
}

// CallContract - Call that first checks target is a contract of kind
func (c *Context) CallContract(target common.Address, kind string, value *uint256.Int, fn func(*Context) error) error {
	if err := RequireKind(target, kind); nil != err {
		return err
	}
	return c.Call(target, value, fn)
}
