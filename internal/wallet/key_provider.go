package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goodnatureofminers/flightguard/internal/ledger"
)

// KeyProvider holds a single raw private key.
type KeyProvider struct {
	key      *ecdsa.PrivateKey
	address  common.Address
	approver Approver
}

// NewKeyProvider parses a hex private key, with or without 0x prefix.
// An empty key yields ErrNoWallet.
func NewKeyProvider(hexKey string, approver Approver) (*KeyProvider, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if trimmed == "" {
		return nil, ErrNoWallet
	}
	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return &KeyProvider{
		key:      key,
		address:  crypto.PubkeyToAddress(key.PublicKey),
		approver: approver,
	}, nil
}

// RequestAccounts returns the single account of the key.
func (p *KeyProvider) RequestAccounts(context.Context) ([]common.Address, error) {
	return []common.Address{p.address}, nil
}

// Signer returns a signer for the key's account.
func (p *KeyProvider) Signer(_ context.Context, account common.Address) (ledger.Signer, error) {
	if account != p.address {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, account.Hex())
	}
	return &accountSigner{
		address:  p.address,
		approver: p.approver,
		sign: func(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
			return types.SignTx(tx, types.LatestSignerForChainID(chainID), p.key)
		},
	}, nil
}
