package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type signFunc func(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)

// accountSigner signs for a single account after optional owner approval.
type accountSigner struct {
	address  common.Address
	sign     signFunc
	approver Approver
}

func (s *accountSigner) Address() common.Address {
	return s.address
}

func (s *accountSigner) SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if s.approver != nil {
		ok, err := s.approver.ApproveTx(ctx, s.address, tx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSignatureRejected, err)
		}
		if !ok {
			return nil, ErrSignatureRejected
		}
	}
	return s.sign(tx, chainID)
}
