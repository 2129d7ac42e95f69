package journal

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/flightguard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertPurchases(ctx context.Context, entries []model.PurchaseEntry) error
		PurchasesByHolder(ctx context.Context, network model.Network, holder common.Address, limit uint64) ([]model.PurchaseEntry, error)
	}
)
