package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/flightguard/internal/model"
)

const insertPurchasesQuery = `
INSERT INTO flightguard_purchases (
	id,
	network,
	tx_hash,
	holder,
	flight_number,
	departure_time,
	tier,
	premium_wei,
	block_number,
	outcome,
	error,
	submitted_at
) VALUES`

// InsertPurchases appends purchase journal rows.
func (r *Repository) InsertPurchases(ctx context.Context, entries []model.PurchaseEntry) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_purchases", firstNetwork(entries), err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertPurchasesQuery)
	if err != nil {
		return fmt.Errorf("prepare purchases batch: %w", err)
	}

	for _, e := range entries {
		if err = batch.Append(
			e.ID,
			string(e.Network),
			e.TxHash,
			e.Holder,
			e.FlightNumber,
			e.DepartureTime,
			uint8(e.Tier),
			premiumOrZero(e.PremiumWei),
			e.BlockNumber,
			string(e.Outcome),
			e.Error,
			e.SubmittedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append purchase %s: %w", e.TxHash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert purchases: %w", err)
	}
	return nil
}

func premiumOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

func firstNetwork(entries []model.PurchaseEntry) model.Network {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Network
}
