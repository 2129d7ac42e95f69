package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/flightguard/internal/model"
)

const purchasesByHolderQuery = `
SELECT
	id,
	tx_hash,
	flight_number,
	departure_time,
	tier,
	premium_wei,
	block_number,
	outcome,
	error,
	submitted_at
FROM flightguard_purchases FINAL
WHERE network = ? AND holder = CAST(? AS FixedString(42))
ORDER BY submitted_at DESC
LIMIT ?`

// PurchasesByHolder returns the most recent journal rows for a holder, newest first.
func (r *Repository) PurchasesByHolder(ctx context.Context, network model.Network, holder common.Address, limit uint64) (entries []model.PurchaseEntry, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("purchases_by_holder", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, purchasesByHolderQuery, string(network), holder.Hex(), limit)
	if err != nil {
		return nil, fmt.Errorf("query purchases: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	entries = []model.PurchaseEntry{}
	for rows.Next() {
		var (
			e       model.PurchaseEntry
			tier    uint8
			outcome string
			premium = new(big.Int)
		)
		if err = rows.Scan(
			&e.ID,
			&e.TxHash,
			&e.FlightNumber,
			&e.DepartureTime,
			&tier,
			premium,
			&e.BlockNumber,
			&outcome,
			&e.Error,
			&e.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		e.Network = network
		e.Holder = holder.Hex()
		e.Tier = model.Tier(tier)
		e.PremiumWei = premium
		e.Outcome = model.PurchaseOutcome(outcome)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchases: %w", err)
	}
	return entries, nil
}
