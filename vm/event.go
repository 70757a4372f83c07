// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vm

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/counter"
	"github.com/ForceProtocol/TokenSaleContracts/messagebus"
)

// EventSource - From field of every event message on the bus
const EventSource = "vm"

// Event - a notification raised by a contract
//
// events are only published once the call that raised them commits
type Event struct {
	Contract common.Address    `json:"contract"`
	Kind     string            `json:"kind"`
	Name     string            `json:"name"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// Emit - raise an event from the executing contract
//
// events raised inside a nested call that fails are discarded with
// the rest of that call's writes
func (c *Context) Emit(name string, fields map[string]string) {
	*c.events = append(*c.events, Event{
		Contract: c.self,
		Kind:     KindOf(c.self),
		Name:     name,
		Fields:   fields,
	})
}

func publish(events []Event) {
	for _, e := range events {
		messagebus.Bus.Events.Send(EventSource, e)
	}
}

var statistics struct {
	committed counter.Counter
	aborted   counter.Counter
}

// Stats - external calls committed and aborted since Initialise
func Stats() (committed uint64, aborted uint64) {
	return statistics.committed.Uint64(), statistics.aborted.Uint64()
}
