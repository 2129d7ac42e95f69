package model

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const etherDecimals = 18

// PolicyPremium is the fixed purchase payment, 0.01 of the native currency.
var PolicyPremium = MustParseEther("0.01")

// ParseEther converts a decimal ether amount into wei.
func ParseEther(value string) (*big.Int, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("parse ether amount %q: %w", value, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("negative ether amount %q", value)
	}
	wei := d.Shift(etherDecimals)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, fmt.Errorf("ether amount %q has more than %d decimals", value, etherDecimals)
	}
	return wei.BigInt(), nil
}

// MustParseEther is ParseEther for constants.
func MustParseEther(value string) *big.Int {
	wei, err := ParseEther(value)
	if err != nil {
		panic(err)
	}
	return wei
}

// FormatEther renders wei as an ether decimal without trailing zeros. Nil renders as "0".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -etherDecimals).String()
}
