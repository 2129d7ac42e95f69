// Package wallet supplies the account and signing capability used to purchase policies.
//
// A Provider stands in for the browser-injected wallet: it authorises accounts on
// request and hands out a signer for an authorised account.
package wallet

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/flightguard/internal/ledger"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Provider authorises accounts and signs on their behalf.
	Provider interface {
		RequestAccounts(ctx context.Context) ([]common.Address, error)
		Signer(ctx context.Context, account common.Address) (ledger.Signer, error)
	}

	// PassphraseSource resolves the passphrase unlocking a keystore account.
	PassphraseSource interface {
		Get() (string, error)
	}

	// Approver asks the account owner to confirm a transaction before it is signed.
	Approver interface {
		ApproveTx(ctx context.Context, from common.Address, tx *types.Transaction) (bool, error)
	}
)
