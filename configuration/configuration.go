// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/ForceProtocol/TokenSaleContracts/deployment"
	"github.com/ForceProtocol/TokenSaleContracts/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "tokensale.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "tokensale.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	// native value has this many decimals
	NativeDecimals = 18

	defaultRequired        = 1
	defaultDailyLimit      = "1"
	defaultTokenName       = "Force"
	defaultSymbol          = "FOR"
	defaultDecimals        = 18
	defaultRate            = "15000"
	defaultTokenCap        = "1500000000"
	defaultGoal            = "1600"
	defaultMinContribution = "0.1"
)

// DatabaseType - where the LevelDB files live
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// SaleType - deployment parameters in text form
type SaleType struct {
	Admins          []string `gluamapper:"admins" json:"admins"`
	Required        uint64   `gluamapper:"required" json:"required"`
	DailyLimit      string   `gluamapper:"daily_limit" json:"daily_limit"`
	TokenName       string   `gluamapper:"token_name" json:"token_name"`
	Symbol          string   `gluamapper:"symbol" json:"symbol"`
	Decimals        uint64   `gluamapper:"decimals" json:"decimals"`
	StartTime       string   `gluamapper:"start_time" json:"start_time"`
	EndTime         string   `gluamapper:"end_time" json:"end_time"`
	Rate            string   `gluamapper:"rate" json:"rate"`
	TokenCap        string   `gluamapper:"token_cap" json:"token_cap"`
	Goal            string   `gluamapper:"goal" json:"goal"`
	MinContribution string   `gluamapper:"min_contribution" json:"min_contribution"`
	Premint         string   `gluamapper:"premint" json:"premint"`
	PremintTo       string   `gluamapper:"premint_to" json:"premint_to"`
	Handover        bool     `gluamapper:"handover" json:"handover"`
	Whitelist       []string `gluamapper:"whitelist" json:"whitelist"`
}

// Configuration - contents of the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Sale          SaleType             `gluamapper:"sale" json:"sale"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Get - read decode and verify the configuration
func Get(configurationFileName string, variables map[string]string) (*Configuration, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Sale: SaleType{
			Required:        defaultRequired,
			DailyLimit:      defaultDailyLimit,
			TokenName:       defaultTokenName,
			Symbol:          defaultSymbol,
			Decimals:        defaultDecimals,
			Rate:            defaultRate,
			TokenCap:        defaultTokenCap,
			Goal:            defaultGoal,
			MinContribution: defaultMinContribution,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fault.ErrInvalidDataDirectory
	case ".":
		options.DataDirectory = dataDirectory // same directory as the configuration file
	default:
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDataDirectory
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	return options, nil
}

// DatabaseFile - full path of the LevelDB database
func (c *Configuration) DatabaseFile() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// Parameters - the sale section converted for deployment.Deploy
func (s *SaleType) Parameters() (*deployment.Parameters, error) {
	var err error
	p := &deployment.Parameters{
		Required:  s.Required,
		TokenName: s.TokenName,
		Symbol:    s.Symbol,
		Decimals:  s.Decimals,
		Handover:  s.Handover,
	}

	if p.Admins, err = ParseAddresses(s.Admins); nil != err {
		return nil, err
	}
	if p.Whitelisted, err = ParseAddresses(s.Whitelist); nil != err {
		return nil, err
	}
	if "" != s.PremintTo {
		if p.PremintTo, err = ParseAddress(s.PremintTo); nil != err {
			return nil, err
		}
	}

	if p.StartTime, err = ParseTime(s.StartTime); nil != err {
		return nil, err
	}
	if p.EndTime, err = ParseTime(s.EndTime); nil != err {
		return nil, err
	}

	tokenDecimals := int32(s.Decimals)
	if p.DailyLimit, err = ParseAmount(s.DailyLimit, NativeDecimals); nil != err {
		return nil, err
	}
	if p.Rate, err = ParseAmount(s.Rate, 0); nil != err {
		return nil, err
	}
	if p.TokenCap, err = ParseAmount(s.TokenCap, tokenDecimals); nil != err {
		return nil, err
	}
	if p.Goal, err = ParseAmount(s.Goal, NativeDecimals); nil != err {
		return nil, err
	}
	if p.MinContribution, err = ParseAmount(s.MinContribution, NativeDecimals); nil != err {
		return nil, err
	}
	if p.Premint, err = ParseAmount(s.Premint, tokenDecimals); nil != err {
		return nil, err
	}
	return p, nil
}

func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
