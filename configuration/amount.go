// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"github.com/ForceProtocol/TokenSaleContracts/fault"
)

// ParseAmount - decimal text in whole units scaled by 10^decimals
//
// an empty string is nil so that defaults can apply
func ParseAmount(text string, decimals int32) (*uint256.Int, error) {
	text = strings.TrimSpace(text)
	if "" == text {
		return nil, nil
	}
	d, err := decimal.NewFromString(text)
	if nil != err {
		return nil, fault.ErrInvalidAmount
	}
	d = d.Shift(decimals)
	if d.IsNegative() || !d.Equal(d.Truncate(0)) {
		return nil, fault.ErrInvalidAmount
	}
	n, overflow := uint256.FromBig(d.BigInt())
	if overflow {
		return nil, fault.ErrOverflow
	}
	return n, nil
}

// FormatAmount - inverse of ParseAmount
func FormatAmount(n *uint256.Int, decimals int32) string {
	if nil == n {
		return "0"
	}
	return decimal.NewFromBigInt(n.ToBig(), -decimals).String()
}

// ParseAddress - hex principal, which may not be zero
func ParseAddress(text string) (common.Address, error) {
	text = strings.TrimSpace(text)
	if !common.IsHexAddress(text) {
		return common.Address{}, fault.ErrInvalidAddress
	}
	a := common.HexToAddress(text)
	if (common.Address{}) == a {
		return common.Address{}, fault.ErrZeroAddress
	}
	return a, nil
}

// ParseAddresses - ParseAddress over a list
func ParseAddresses(texts []string) ([]common.Address, error) {
	addresses := make([]common.Address, 0, len(texts))
	for _, s := range texts {
		a, err := ParseAddress(s)
		if nil != err {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}

// ParseTime - RFC 3339 text
func ParseTime(text string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(text))
	if nil != err {
		return time.Time{}, fault.ErrInvalidTime
	}
	return t.UTC(), nil
}
