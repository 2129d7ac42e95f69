package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/flightguard/internal/ledger"
)

// KeystoreProvider serves accounts from a go-ethereum keystore directory.
// The first account is unlocked when accounts are requested.
type KeystoreProvider struct {
	dir         string
	passphrases PassphraseSource
	approver    Approver

	mu       sync.Mutex
	ks       *keystore.KeyStore
	unlocked map[common.Address]accounts.Account
}

// NewKeystoreProvider prepares a provider over dir. The directory is not read until RequestAccounts.
func NewKeystoreProvider(dir string, passphrases PassphraseSource, approver Approver) *KeystoreProvider {
	return &KeystoreProvider{
		dir:         dir,
		passphrases: passphrases,
		approver:    approver,
		unlocked:    make(map[common.Address]accounts.Account),
	}
}

// RequestAccounts unlocks the first keystore account and returns all accounts, first one first.
func (p *KeystoreProvider) RequestAccounts(context.Context) ([]common.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ks, err := p.open()
	if err != nil {
		return nil, err
	}
	held := ks.Accounts()
	if len(held) == 0 {
		return nil, fmt.Errorf("%w: keystore %s holds no accounts", ErrNoWallet, p.dir)
	}

	first := held[0]
	if _, ok := p.unlocked[first.Address]; !ok {
		if p.passphrases == nil {
			return nil, fmt.Errorf("%w: no passphrase source", ErrConnectionRejected)
		}
		pass, err := p.passphrases.Get()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConnectionRejected, err)
		}
		if err := ks.Unlock(first, pass); err != nil {
			return nil, fmt.Errorf("%w: unlock %s: %w", ErrConnectionRejected, first.Address.Hex(), err)
		}
		p.unlocked[first.Address] = first
	}

	out := make([]common.Address, len(held))
	for i, acct := range held {
		out[i] = acct.Address
	}
	return out, nil
}

// Signer returns a signer for an account unlocked by RequestAccounts.
func (p *KeystoreProvider) Signer(_ context.Context, account common.Address) (ledger.Signer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	acct, ok := p.unlocked[account]
	if !ok || p.ks == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, account.Hex())
	}
	ks := p.ks
	return &accountSigner{
		address:  account,
		approver: p.approver,
		sign: func(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
			return ks.SignTx(acct, tx, chainID)
		},
	}, nil
}

func (p *KeystoreProvider) open() (*keystore.KeyStore, error) {
	if p.ks != nil {
		return p.ks, nil
	}
	if p.dir == "" {
		return nil, fmt.Errorf("%w: keystore directory not set", ErrNoWallet)
	}
	info, err := os.Stat(p.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: keystore %s not found", ErrNoWallet, p.dir)
		}
		return nil, fmt.Errorf("%w: %w", ErrConnectionRejected, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: keystore %s is not a directory", ErrNoWallet, p.dir)
	}
	p.ks = keystore.NewKeyStore(p.dir, keystore.StandardScryptN, keystore.StandardScryptP)
	return p.ks, nil
}
