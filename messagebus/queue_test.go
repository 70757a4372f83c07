// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ForceProtocol/TokenSaleContracts/messagebus"
)

func TestBroadcast(t *testing.T) {
	queue := &messagebus.BroadcastQueue{}

	// nothing listening so this is discarded without blocking
	queue.Send("test", "ignored")
	assert.Equal(t, uint64(0), queue.Dropped(), "no listener is not a drop")

	const listeners = 3
	channels := make([]<-chan messagebus.Message, listeners)
	for i := range channels {
		channels[i] = queue.Chan(10)
	}
	assert.Equal(t, listeners, queue.Listeners(), "listeners")

	items := []string{"c1", "c2", "c3"}
	for _, item := range items {
		queue.Send("test", item)
	}

	for n, c := range channels {
		for _, item := range items {
			received := <-c
			assert.Equal(t, "test", received.From, "listener[%d] from", n)
			assert.Equal(t, item, received.Item, "listener[%d] item", n)
		}
	}

	for _, c := range channels {
		queue.Release(c)
	}
	assert.Equal(t, 0, queue.Listeners(), "released")

	_, ok := <-channels[0]
	assert.False(t, ok, "released channel is closed")
}

func TestBroadcastDropsWhenFull(t *testing.T) {
	queue := &messagebus.BroadcastQueue{}

	c := queue.Chan(1)
	defer queue.Release(c)

	queue.Send("test", 1)
	queue.Send("test", 2)
	queue.Send("test", 3)

	assert.Equal(t, uint64(2), queue.Dropped(), "dropped")
	received := <-c
	assert.Equal(t, 1, received.Item, "first message kept")
}

func TestReleaseUnknown(t *testing.T) {
	queue := &messagebus.BroadcastQueue{}
	keep := queue.Chan(0)
	queue.Release(make(chan messagebus.Message))
	assert.Equal(t, 1, queue.Listeners(), "unknown channel ignored")
	queue.Release(keep)
}
