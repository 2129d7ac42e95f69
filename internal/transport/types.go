package transport

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/flightguard/internal/contracts"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/policy"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PolicyLister interface {
		ListPolicies(ctx context.Context, holder common.Address) ([]model.Policy, error)
		ListPoliciesPartial(ctx context.Context, holder common.Address) (policy.PartialResult, error)
	}

	ContractCatalog interface {
		All() []contracts.Contract
		Network() model.Network
		ChainID() uint64
		ExplorerURL() string
	}

	// ChainProbe reports whether the ledger node answers.
	ChainProbe interface {
		ChainID(ctx context.Context) (*big.Int, error)
	}
)
