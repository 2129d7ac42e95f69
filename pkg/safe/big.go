// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
	"math/big"
)

// BigInt64 converts a ledger integer to int64, rejecting nil and out-of-range values.
func BigInt64(v *big.Int) (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value")
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("value %s out of int64 range", v)
	}
	return v.Int64(), nil
}

// BigUint64 converts a ledger integer to uint64, rejecting nil, negative and oversized values.
func BigUint64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value")
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("value %s out of uint64 range", v)
	}
	return v.Uint64(), nil
}

// BigUint8 converts a ledger integer to uint8.
func BigUint8(v *big.Int) (uint8, error) {
	u, err := BigUint64(v)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint8 {
		return 0, fmt.Errorf("value %d out of uint8 range", u)
	}
	return uint8(u), nil
}

// NonNegativeBig converts a signed integer into a ledger integer, rejecting negatives.
func NonNegativeBig[T ~int | ~int32 | ~int64](v T) (*big.Int, error) {
	if v < 0 {
		return nil, fmt.Errorf("value %d is negative", v)
	}
	return big.NewInt(int64(v)), nil
}
