// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vm

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
)

// Method - one entry of a contract's method table
type Method struct {
	Payable bool
	Run     func(*Context, Args) error
}

// Methods - method table of a contract kind
type Methods map[string]Method

// Definition - what the substrate knows about a contract kind
type Definition struct {
	Methods Methods

	// called for an empty payload; nil rejects plain value transfers
	Receive func(*Context) error
}

type kindData struct {
	definition Definition
	log        *logger.L
}

// registration happens from package init, before Initialise
var registry = struct {
	sync.RWMutex
	kinds map[string]*kindData
}{
	kinds: make(map[string]*kindData),
}

type vmData struct {
	sync.Mutex
	initialised bool
	clock       Clock
	log         *logger.L
}

var globalData vmData

// Register - add a contract kind
//
// panics on duplicate registration since that is a programming error
func Register(kind string, definition Definition) {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.kinds[kind]; ok {
		panic("vm: duplicate contract kind: " + kind)
	}
	registry.kinds[kind] = &kindData{
		definition: definition,
	}
}

// Initialise - start the substrate
//
// storage and the logger must already be initialised
func Initialise(clock Clock) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if nil == clock {
		clock = SystemClock{}
	}

	globalData.log = logger.New("vm")
	globalData.clock = clock

	statistics.committed.Reset()
	statistics.aborted.Reset()

	registry.Lock()
	for kind, k := range registry.kinds {
		k.log = logger.New(kind)
	}
	registry.Unlock()

	globalData.initialised = true
	globalData.log.Info("starting…")

	return nil
}

// Finalise - stop the substrate
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Infof("calls committed: %d  aborted: %d", statistics.committed.Uint64(), statistics.aborted.Uint64())
	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	registry.Lock()
	for _, k := range registry.kinds {
		k.log.Flush()
		k.log = nil
	}
	registry.Unlock()

	globalData.initialised = false
	globalData.clock = nil
	return nil
}

func lookupKind(kind string) (*kindData, bool) {
	registry.RLock()
	defer registry.RUnlock()
	k, ok := registry.kinds[kind]
	return k, ok
}
