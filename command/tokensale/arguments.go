// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ForceProtocol/TokenSaleContracts/configuration"
	"github.com/ForceProtocol/TokenSaleContracts/vm"
)

// encodePayload - method call from typed text arguments
//
// each argument is TYPE:VALUE where TYPE is one of
//   address    hex or address book name
//   addresses  comma separated list of the above
//   amount     native value in whole units
//   tokens     token amount in whole units
//   uint       unsigned integer
//   bytes      hex
func encodePayload(method string, texts []string, decimals int32) ([]byte, error) {
	arguments := make([]interface{}, 0, len(texts))
	for _, text := range texts {
		a, err := parseArgument(text, decimals)
		if nil != err {
			return nil, err
		}
		arguments = append(arguments, a)
	}
	return vm.EncodePayload(method, arguments...)
}

func parseArgument(text string, decimals int32) (interface{}, error) {
	n := strings.Index(text, ":")
	if n < 0 {
		return nil, ErrInvalidArgumentType
	}
	kind, value := text[:n], text[n+1:]

	switch kind {
	case "address":
		return resolve(value)

	case "addresses":
		addresses := []common.Address{}
		for _, s := range strings.Split(value, ",") {
			a, err := resolve(strings.TrimSpace(s))
			if nil != err {
				return nil, err
			}
			addresses = append(addresses, a)
		}
		return addresses, nil

	case "amount", "tokens":
		d := int32(configuration.NativeDecimals)
		if "tokens" == kind {
			d = decimals
		}
		amount, err := configuration.ParseAmount(value, d)
		if nil != err {
			return nil, err
		}
		if nil == amount {
			return nil, ErrMissingArgument
		}
		return amount, nil

	case "uint":
		return strconv.ParseUint(value, 10, 64)

	case "bytes":
		return hex.DecodeString(strings.TrimPrefix(value, "0x"))

	default:
		return nil, ErrInvalidArgumentType
	}
}
