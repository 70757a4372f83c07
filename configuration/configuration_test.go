// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/ForceProtocol/TokenSaleContracts/configuration"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
)

const saleConfiguration = `
local admin = "0x9fd369E59A286ac28F3E976F5337147CaF88E4D4"

return {
    data_directory = ".",

    database = {
        name = "sale-" .. chain .. ".leveldb",
    },

    sale = {
        admins = { admin },
        required = 1,
        start_time = "2018-01-08T09:07:21Z",
        end_time = "2018-05-04T02:54:01Z",
        goal = os.getenv("SALE_GOAL"),
        premint = "2500000",
        premint_to = admin,
        whitelist = {
            "0x00000000000000000000000000000000000000aa",
        },
    },

    logging = {
        size = 2048,
        count = 3,
        levels = {
            DEFAULT = "info",
        },
    },
}
`

func write(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "tokensale.conf")
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestGet(t *testing.T) {
	os.Setenv("SALE_GOAL", "2000")
	defer os.Unsetenv("SALE_GOAL")

	fileName := write(t, saleConfiguration)
	directory := filepath.Dir(fileName)

	c, err := configuration.Get(fileName, map[string]string{"chain": "local"})
	if !assert.Nil(t, err, "get") {
		return
	}

	assert.Equal(t, filepath.Clean(directory), filepath.Clean(c.DataDirectory), "data directory")
	assert.Equal(t, filepath.Join(directory, "data", "sale-local.leveldb"), c.DatabaseFile(), "database")
	assert.Equal(t, filepath.Join(directory, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "tokensale.log", c.Logging.File, "default log file")
	assert.EqualValues(t, 2048, c.Logging.Size, "log size")
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"], "log level")

	assert.Equal(t, "15000", c.Sale.Rate, "default rate")
	assert.Equal(t, "2000", c.Sale.Goal, "goal from environment")

	p, err := c.Sale.Parameters()
	if !assert.Nil(t, err, "parameters") {
		return
	}
	admin := common.HexToAddress("0x9fd369E59A286ac28F3E976F5337147CaF88E4D4")
	assert.Equal(t, []common.Address{admin}, p.Admins, "admins")
	assert.Equal(t, admin, p.PremintTo, "premint to")
	assert.Equal(t, uint64(1), p.Required, "required")
	assert.Equal(t, time.Unix(1515402441, 0).UTC(), p.StartTime, "start")
	assert.Equal(t, time.Unix(1525402441, 0).UTC(), p.EndTime, "end")
	assert.Equal(t, "15000", p.Rate.Dec(), "rate")
	assert.Equal(t, "2000000000000000000000", p.Goal.Dec(), "goal")
	assert.Equal(t, "100000000000000000", p.MinContribution.Dec(), "minimum")
	assert.Equal(t, "1000000000000000000", p.DailyLimit.Dec(), "daily limit")
	assert.Equal(t, "2500000000000000000000000", p.Premint.Dec(), "premint")
	assert.Equal(t, 1, len(p.Whitelisted), "whitelist")
	assert.False(t, p.Handover, "handover")
}

func TestGetRejects(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{`return { data_directory = "" }`, fault.ErrInvalidDataDirectory},
		{`return { data_directory = "~" }`, fault.ErrInvalidDataDirectory},
		{`return 42`, fault.ErrNoConfiguration},
	}

	for i, item := range items {
		_, err := configuration.Get(write(t, item.text), nil)
		assert.Equal(t, item.err, err, "%d: %s", i, item.text)
	}

	_, err := configuration.Get(write(t, `return {`), nil)
	assert.NotNil(t, err, "lua syntax")

	_, err = configuration.Get(write(t, `return { data_directory = "/no/such/directory" }`), nil)
	assert.True(t, os.IsNotExist(err), "missing directory: %v", err)
}

func TestParseConfigurationFileTarget(t *testing.T) {
	fileName := write(t, `return { name = arg[0] }`)

	var notPointer struct{}
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, notPointer, nil), "value")

	n := 1
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &n, nil), "int pointer")

	target := struct {
		Name string `gluamapper:"name"`
	}{}
	assert.Nil(t, configuration.ParseConfigurationFile(fileName, &target, nil), "struct pointer")
	assert.Equal(t, fileName, target.Name, "arg[0]")
}

func TestParametersRejects(t *testing.T) {
	valid := func() configuration.SaleType {
		return configuration.SaleType{
			Admins:    []string{"0x9fd369E59A286ac28F3E976F5337147CaF88E4D4"},
			Required:  1,
			Decimals:  18,
			StartTime: "2018-01-08T09:07:21Z",
			EndTime:   "2018-05-04T02:54:01Z",
			Rate:      "15000",
			TokenCap:  "1500000000",
		}
	}

	s := valid()
	_, err := s.Parameters()
	assert.Nil(t, err, "valid")

	s = valid()
	s.Admins = []string{"not an address"}
	_, err = s.Parameters()
	assert.Equal(t, fault.ErrInvalidAddress, err, "admin")

	s = valid()
	s.Whitelist = []string{"0x0000000000000000000000000000000000000000"}
	_, err = s.Parameters()
	assert.Equal(t, fault.ErrZeroAddress, err, "whitelist")

	s = valid()
	s.EndTime = "next tuesday"
	_, err = s.Parameters()
	assert.Equal(t, fault.ErrInvalidTime, err, "end time")

	s = valid()
	s.Rate = "1.5"
	_, err = s.Parameters()
	assert.Equal(t, fault.ErrInvalidAmount, err, "fractional rate")
}

func TestParseAmount(t *testing.T) {
	items := []struct {
		text     string
		decimals int32
		expected string
		err      error
	}{
		{"1", 18, "1000000000000000000", nil},
		{"0.1", 18, "100000000000000000", nil},
		{" 1600 ", 18, "1600000000000000000000", nil},
		{"15000", 0, "15000", nil},
		{"0.0000000000000000001", 18, "", fault.ErrInvalidAmount},
		{"-1", 18, "", fault.ErrInvalidAmount},
		{"one", 18, "", fault.ErrInvalidAmount},
		{"1e80", 0, "", fault.ErrOverflow},
	}

	for i, item := range items {
		n, err := configuration.ParseAmount(item.text, item.decimals)
		assert.Equal(t, item.err, err, "%d: error", i)
		if nil == item.err {
			assert.Equal(t, item.expected, n.Dec(), "%d: value", i)
		}
	}

	n, err := configuration.ParseAmount("", 18)
	assert.Nil(t, err, "empty")
	assert.Nil(t, n, "empty amount")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.5", configuration.FormatAmount(uint256.NewInt(1500000000000000000), 18), "fraction")
	assert.Equal(t, "15000", configuration.FormatAmount(uint256.NewInt(15000), 0), "integer")
	assert.Equal(t, "0", configuration.FormatAmount(nil, 18), "nil")
}
