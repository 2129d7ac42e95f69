package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/flightguard/internal/clock"
)

// ReceiptReader fetches transaction receipts.
type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// WaitMined polls for the receipt of hash until it appears or ctx ends.
// A receipt with failed status yields ErrReverted together with the receipt.
// Transient lookup errors are retried; the last one is reported if ctx ends first.
func WaitMined(ctx context.Context, client ReceiptReader, hash common.Hash, interval time.Duration) (*types.Receipt, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	var (
		receipt *types.Receipt
		lastErr error
	)
	err := clock.PollUntil(ctx, interval, func(ctx context.Context) (bool, error) {
		r, err := client.TransactionReceipt(ctx, hash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				lastErr = err
			}
			return false, nil
		}
		receipt = r
		return true, nil
	})
	if err != nil {
		if lastErr != nil {
			return nil, fmt.Errorf("%w: %s: %w (last lookup error: %v)", ErrNotMined, hash.Hex(), err, lastErr)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrNotMined, hash.Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s in block %s", ErrReverted, hash.Hex(), receipt.BlockNumber)
	}
	return receipt, nil
}
