// Package journal records purchases submitted from this client. The journal is
// write-behind and informational; policy state is always read from the ledger.
package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/pkg/batcher"
	"go.uber.org/zap"
)

const (
	DefaultFlushSize     = 50
	DefaultFlushInterval = 5 * time.Second
	DefaultHistoryLimit  = 20
)

type Writer struct {
	repo    Repository
	network model.Network
	logger  *zap.Logger
	pending *batcher.Batcher[model.PurchaseEntry]
}

func NewWriter(repo Repository, network model.Network, cfg batcher.Config, logger *zap.Logger) (*Writer, error) {
	if repo == nil {
		return nil, errors.New("journal repository is required")
	}
	if network == "" {
		return nil, errors.New("journal network is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FlushSize == 0 {
		cfg.FlushSize = DefaultFlushSize
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}

	w := &Writer{
		repo:    repo,
		network: network,
		logger:  logger.Named("journal"),
	}
	w.pending = batcher.New[model.PurchaseEntry](w.logger.Named("batcher"), w.flush, cfg)
	return w, nil
}

func (w *Writer) Start(ctx context.Context) {
	w.pending.Start(ctx)
}

// Stop flushes queued entries and waits for the last write.
func (w *Writer) Stop() {
	w.pending.Stop()
}

// Record queues an entry. Entries without a network are stamped with the writer's.
func (w *Writer) Record(ctx context.Context, entry model.PurchaseEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entry.Network == "" {
		entry.Network = w.network
	}
	if entry.SubmittedAt.IsZero() {
		entry.SubmittedAt = time.Now().UTC()
	}
	return w.pending.Add(ctx, entry)
}

// History returns the newest journal entries for holder. A zero limit means DefaultHistoryLimit.
func (w *Writer) History(ctx context.Context, holder common.Address, limit uint64) ([]model.PurchaseEntry, error) {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	entries, err := w.repo.PurchasesByHolder(ctx, w.network, holder, limit)
	if err != nil {
		return nil, fmt.Errorf("journal history for %s: %w", holder.Hex(), err)
	}
	return entries, nil
}

func (w *Writer) flush(ctx context.Context, entries []model.PurchaseEntry) error {
	batch := make([]model.PurchaseEntry, len(entries))
	copy(batch, entries)

	if err := w.repo.InsertPurchases(ctx, batch); err != nil {
		return fmt.Errorf("insert %d purchases: %w", len(batch), err)
	}
	w.logger.Debug("purchases journaled", zap.Int("count", len(batch)))
	return nil
}
