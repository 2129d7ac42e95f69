package policy

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/flightguard/internal/ledger"
)

const (
	methodPurchasePolicy      = "purchasePolicy"
	methodGetPoliciesByHolder = "getPoliciesByHolder"
	methodPolicies            = "policies"
)

// Binding exposes the policy contract methods over a bound contract.
type Binding struct {
	contract *ledger.BoundContract
}

// NewBinding wraps the bound policy contract.
func NewBinding(contract *ledger.BoundContract) *Binding {
	return &Binding{contract: contract}
}

// PolicyIDs calls getPoliciesByHolder(holder).
func (b *Binding) PolicyIDs(ctx context.Context, holder common.Address) ([]*big.Int, error) {
	out, err := b.contract.Call(ctx, methodGetPoliciesByHolder, holder)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrDecode, methodGetPoliciesByHolder, len(out))
	}
	ids, ok := out[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %s returned %T", ErrDecode, methodGetPoliciesByHolder, out[0])
	}
	return ids, nil
}

// PolicyTuple calls policies(id) and returns the raw positional record.
func (b *Binding) PolicyTuple(ctx context.Context, id *big.Int) ([]any, error) {
	return b.contract.Call(ctx, methodPolicies, id)
}

// PurchasePolicy sends purchasePolicy(flightNumber, departure, tier) with opts.Value as payment.
func (b *Binding) PurchasePolicy(ctx context.Context, opts ledger.TransactOpts, flightNumber string, departure *big.Int, tier uint8) (*types.Transaction, error) {
	return b.contract.Transact(ctx, opts, methodPurchasePolicy, flightNumber, departure, tier)
}

// WaitMined waits for tx to be included.
func (b *Binding) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return b.contract.WaitMined(ctx, tx)
}
