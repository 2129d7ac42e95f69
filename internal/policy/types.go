// Package policy purchases flight-delay policies and reads them back from the policy contract.
package policy

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/flightguard/internal/ledger"
	"github.com/goodnatureofminers/flightguard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PolicyReader reads policy state from the contract.
	PolicyReader interface {
		PolicyIDs(ctx context.Context, holder common.Address) ([]*big.Int, error)
		PolicyTuple(ctx context.Context, id *big.Int) ([]any, error)
	}

	// PolicyWriter submits purchases and waits for their inclusion.
	PolicyWriter interface {
		PurchasePolicy(ctx context.Context, opts ledger.TransactOpts, flightNumber string, departure *big.Int, tier uint8) (*types.Transaction, error)
		WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	}

	// SignerSource hands out a signer for a connected account.
	SignerSource interface {
		Signer(ctx context.Context, account common.Address) (ledger.Signer, error)
	}

	// TxLinker builds a block explorer link for a transaction.
	TxLinker interface {
		TxURL(hash common.Hash) string
	}

	// Journal records purchases submitted from this client.
	Journal interface {
		Record(ctx context.Context, entry model.PurchaseEntry) error
	}

	// Limiter throttles ledger reads. go.uber.org/ratelimit limiters satisfy it.
	Limiter interface {
		Take() time.Time
	}

	// Metrics records purchase and listing metrics.
	Metrics interface {
		ObservePurchase(tier model.Tier, outcome model.PurchaseOutcome, started time.Time)
		ObserveList(err error, ids int, started time.Time)
		ObserveRecordFailures(failed int)
	}
)
