package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Confirmation is handed from a confirmed purchase to the confirmation view.
// Draft echoes what was submitted, not the ledger's own record.
type Confirmation struct {
	TxHash      common.Hash
	BlockNumber *big.Int
	Holder      common.Address
	Draft       PolicyDraft
	ExplorerURL string
}
