// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/ForceProtocol/TokenSaleContracts/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - one item on the bus
type Message struct {
	From string
	Item interface{}
}

// BroadcastQueue - deliver each message to every current listener
type BroadcastQueue struct {
	sync.Mutex
	listeners []chan Message
	dropped   counter.Counter
}

// Bus - the process wide queues
var Bus = struct {
	Events *BroadcastQueue
}{
	Events: &BroadcastQueue{},
}

// Send - queue data to all listeners
func (queue *BroadcastQueue) Send(from string, item interface{}) {
	m := Message{
		From: from,
		Item: item,
	}

	queue.Lock()
	defer queue.Unlock()

	for _, l := range queue.listeners {
		select {
		case l <- m:
		default:
			queue.dropped.Increment()
		}
	}
}

// Chan - add a listener; size <= 0 selects the default buffer
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = queueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - remove a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, l := range queue.listeners {
		if (<-chan Message)(l) == c {
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			close(l)
			return
		}
	}
}

// Listeners - number of open listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.Lock()
	defer queue.Unlock()
	return len(queue.listeners)
}

// Dropped - messages lost to full listeners
func (queue *BroadcastQueue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
