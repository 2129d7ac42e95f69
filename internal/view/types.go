package view

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/policy"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Connector interface {
		Connect(ctx context.Context) (model.WalletSession, error)
	}

	Purchaser interface {
		Purchase(ctx context.Context, holder common.Address, draft model.PolicyDraft) (model.Confirmation, error)
	}

	Lister interface {
		ListPolicies(ctx context.Context, holder common.Address) ([]model.Policy, error)
		ListPoliciesPartial(ctx context.Context, holder common.Address) (policy.PartialResult, error)
	}
)
