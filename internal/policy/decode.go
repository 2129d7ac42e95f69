package policy

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/pkg/safe"
)

// Positions of the fields returned by policies(uint256).
const (
	fieldHolder = iota
	fieldFlightNumber
	fieldDepartureTime
	fieldPremium
	fieldPayoutAmount
	fieldPurchaseTime
	fieldPaidOut
	fieldActive
	fieldTier

	recordArity
)

// DecodePolicy maps the positional record of policy id to a named Policy.
// Status is left empty; see StatusResolver.
func DecodePolicy(id *big.Int, tuple []any) (model.Policy, error) {
	if len(tuple) < recordArity {
		return model.Policy{}, fmt.Errorf("%w %s: %d fields, want at least %d", ErrDecode, id, len(tuple), recordArity)
	}

	var (
		p   = model.Policy{ID: new(big.Int).Set(id)}
		err error
	)
	if p.Holder, err = field[common.Address](tuple, fieldHolder); err != nil {
		return model.Policy{}, decodeErr(id, err)
	}
	if p.FlightNumber, err = field[string](tuple, fieldFlightNumber); err != nil {
		return model.Policy{}, decodeErr(id, err)
	}
	if p.DepartureTime, err = epochField(tuple, fieldDepartureTime); err != nil {
		return model.Policy{}, decodeErr(id, err)
	}
	if p.Premium, err = field[*big.Int](tuple, fieldPremium); err != nil {
		return model.Policy{}, decodeErr(id, err)
	}
	if p.PayoutAmount, err = field[*big.Int](tuple, fieldPayoutAmount); err != nil {
		return model.Policy{}, decodeErr(id, err)
	}
	if p.PurchaseTime, err = epochField(tuple, fieldPurchaseTime); err != nil {
		return model.Policy{}, decodeErr(id, err)
	}
	if p.PaidOut, err = field[bool](tuple, fieldPaidOut); err != nil {
		return model.Policy{}, decodeErr(id, err)
	}
	if p.Active, err = field[bool](tuple, fieldActive); err != nil {
		return model.Policy{}, decodeErr(id, err)
	}
	tier, err := field[uint8](tuple, fieldTier)
	if err != nil {
		return model.Policy{}, decodeErr(id, err)
	}
	p.Tier = model.Tier(tier)
	return p, nil
}

func field[T any](tuple []any, i int) (T, error) {
	v, ok := tuple[i].(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("field %d is %T, want %T", i, tuple[i], zero)
	}
	return v, nil
}

func epochField(tuple []any, i int) (int64, error) {
	v, err := field[*big.Int](tuple, i)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	epoch, err := safe.BigInt64(v)
	if err != nil {
		return 0, fmt.Errorf("field %d: %w", i, err)
	}
	return epoch, nil
}

func decodeErr(id *big.Int, err error) error {
	return fmt.Errorf("%w %s: %w", ErrDecode, id, err)
}
