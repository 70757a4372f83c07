// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vmtest - common setup for contract tests
package vmtest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/ForceProtocol/TokenSaleContracts/datacentre"
	"github.com/ForceProtocol/TokenSaleContracts/messagebus"
	"github.com/ForceProtocol/TokenSaleContracts/storage"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

const (
	testingDirName   = "testing"
	databaseFileName = "test.leveldb"
)

// Genesis - the time every test clock starts at
var Genesis = time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC)

// Main - wrap the tests of a package with a logger
func Main(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// Setup - fresh database and substrate with a manual clock at Genesis
//
// the returned function undoes everything
func Setup(t *testing.T) (*vm.ManualClock, func()) {
	clock := vm.NewManualClock(Genesis)
	return clock, SetupWithClock(t, clock)
}

// SetupWithClock - fresh database and substrate reading time from clock
func SetupWithClock(t *testing.T, clock vm.Clock) func() {
	name := filepath.Join(testingDirName, databaseFileName)
	_ = os.RemoveAll(name)

	err := storage.Initialise(name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = vm.Initialise(clock)
	if nil != err {
		storage.Finalise()
		t.Fatalf("vm initialise error: %s", err)
	}

	return func() {
		_ = vm.Finalise()
		storage.Finalise()
		_ = os.RemoveAll(name)
	}
}

// Account - deterministic principal for a test name
func Account(name string) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte(name)))
}

// Ether - n whole units of native value
func Ether(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), Unit())
}

// Unit - 10^18
func Unit() *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(18))
}

// Tokens - n whole tokens with 18 decimals
func Tokens(n uint64) *uint256.Int {
	return Ether(n)
}

// Fund - give accounts native value, failing the test on error
func Fund(t *testing.T, amount *uint256.Int, accounts ...common.Address) {
	for _, a := range accounts {
		if err := vm.Fund(a, amount); nil != err {
			t.Fatalf("fund %s error: %s", a.Hex(), err)
		}
	}
}

// Conserved - the balances held in a data centre add up to its supply
func Conserved(t *testing.T, dc common.Address) {
	holders, err := datacentre.Holders(dc)
	if !assert.Nil(t, err, "holders") {
		return
	}
	sum := new(uint256.Int)
	for _, balance := range holders {
		sum.Add(sum, balance)
	}
	assert.Equal(t, datacentre.TotalSupply(dc).Dec(), sum.Dec(), "sum of balances")
}

// Listener - collects the events published while it is open
type Listener struct {
	queue <-chan messagebus.Message
}

// Listen - start collecting events; Close must be called
func Listen() *Listener {
	return &Listener{queue: messagebus.Bus.Events.Chan(0)}
}

// Drain - every event received so far
func (l *Listener) Drain() []vm.Event {
	events := []vm.Event{}
	for {
		select {
		case m := <-l.queue:
			if e, ok := m.Item.(vm.Event); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

// Names - names of the drained events in order
func (l *Listener) Names() []string {
	names := []string{}
	for _, e := range l.Drain() {
		names = append(names, e.Name)
	}
	return names
}

// Close - stop collecting
func (l *Listener) Close() {
	messagebus.Bus.Events.Release(l.queue)
}
