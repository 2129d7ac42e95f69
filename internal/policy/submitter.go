package policy

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/flightguard/internal/ledger"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/wallet"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultConfirmTimeout bounds the wait for a sent purchase to be mined.
const DefaultConfirmTimeout = 10 * time.Minute

// Submitter purchases policies on behalf of a connected holder.
type Submitter struct {
	logger  *zap.Logger
	network model.Network
	writer  PolicyWriter
	signers SignerSource
	links   TxLinker
	metrics Metrics
	journal Journal
	premium *big.Int
	now     func() time.Time

	confirmTimeout time.Duration
}

// NewSubmitter builds a Submitter. signers may be nil when no wallet is installed.
func NewSubmitter(
	writer PolicyWriter,
	signers SignerSource,
	links TxLinker,
	metrics Metrics,
	network model.Network,
	logger *zap.Logger,
) (*Submitter, error) {
	if writer == nil {
		return nil, errors.New("policy writer is required")
	}
	if links == nil {
		return nil, errors.New("tx linker is required")
	}
	if metrics == nil {
		return nil, errors.New("submitter metrics is required")
	}
	return &Submitter{
		logger:  logger.Named("submitter").With(zap.String("network", string(network))),
		network: network,
		writer:  writer,
		signers: signers,
		links:   links,
		metrics: metrics,
		premium: new(big.Int).Set(model.PolicyPremium),
		now:     time.Now,

		confirmTimeout: DefaultConfirmTimeout,
	}, nil
}

// SetJournal records every submitted purchase into j.
func (s *Submitter) SetJournal(j Journal) {
	s.journal = j
}

// Premium returns the payment sent with each purchase.
func (s *Submitter) Premium() *big.Int {
	return new(big.Int).Set(s.premium)
}

// ValidateDraft checks a draft and returns its departure in epoch seconds.
func ValidateDraft(draft model.PolicyDraft) (int64, error) {
	if strings.TrimSpace(draft.FlightNumber) == "" {
		return 0, fmt.Errorf("%w: flight number is required", ErrInvalidDraft)
	}
	if !draft.Tier.Valid() {
		return 0, fmt.Errorf("%w: tier %d out of range 1-3", ErrInvalidDraft, draft.Tier)
	}
	return ParseDeparture(draft.DepartureLocal)
}

// Purchase submits purchasePolicy for draft from holder and waits until it is mined.
// Once the transaction is sent, cancelling ctx no longer interrupts the wait or the
// journal write; only the confirm timeout ends it.
// The returned confirmation echoes the draft. Nothing is returned for a failed purchase.
func (s *Submitter) Purchase(ctx context.Context, holder common.Address, draft model.PolicyDraft) (model.Confirmation, error) {
	departure, err := ValidateDraft(draft)
	if err != nil {
		return model.Confirmation{}, err
	}
	draft.FlightNumber = strings.TrimSpace(draft.FlightNumber)

	logger := s.logger.With(
		zap.String("holder", holder.Hex()),
		zap.String("flight", draft.FlightNumber),
		zap.Int64("departure", departure),
		zap.Uint8("tier", uint8(draft.Tier)),
	)

	if s.signers == nil || holder == (common.Address{}) {
		logger.Error("purchase without a connected wallet")
		return model.Confirmation{}, ErrWalletNotPresent
	}
	signer, err := s.signers.Signer(ctx, holder)
	if err != nil {
		logger.Error("signer unavailable", zap.Error(err))
		return model.Confirmation{}, fmt.Errorf("%w: %w", ErrWalletNotPresent, err)
	}

	started := s.now()
	logger.Info("Waiting for wallet confirmation...")
	tx, err := s.writer.PurchasePolicy(ctx, ledger.TransactOpts{Signer: signer, Value: s.Premium()},
		draft.FlightNumber, big.NewInt(departure), uint8(draft.Tier))
	if err != nil {
		err = classifySubmitError(err)
		logger.Error("purchase submission failed", zap.Error(err))
		s.metrics.ObservePurchase(draft.Tier, model.PurchaseFailed, started)
		return model.Confirmation{}, err
	}

	logger = logger.With(zap.String("tx_hash", tx.Hash().Hex()))
	logger.Info("Transaction sent, waiting for confirmation...")

	sent := context.WithoutCancel(ctx)
	waitCtx, cancel := context.WithTimeout(sent, s.confirmTimeout)
	receipt, err := s.writer.WaitMined(waitCtx, tx)
	cancel()
	if err != nil {
		outcome := model.PurchaseFailed
		if errors.Is(err, ledger.ErrReverted) {
			outcome = model.PurchaseReverted
		}
		s.record(sent, logger, s.entry(holder, draft, departure, tx, receipt, outcome, err, started))
		s.metrics.ObservePurchase(draft.Tier, outcome, started)
		logger.Error("purchase not confirmed", zap.Error(err))
		return model.Confirmation{}, fmt.Errorf("%w: %w", ErrConfirmationFailed, err)
	}

	s.record(sent, logger, s.entry(holder, draft, departure, tx, receipt, model.PurchaseConfirmed, nil, started))
	s.metrics.ObservePurchase(draft.Tier, model.PurchaseConfirmed, started)
	logger.Info("policy purchased", zap.Uint64("block", receipt.BlockNumber.Uint64()))

	return model.Confirmation{
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber,
		Holder:      holder,
		Draft:       draft,
		ExplorerURL: s.links.TxURL(tx.Hash()),
	}, nil
}

func classifySubmitError(err error) error {
	switch {
	case errors.Is(err, wallet.ErrSignatureRejected):
		return fmt.Errorf("%w: %w", ErrUserRejectedSignature, err)
	case errors.Is(err, ledger.ErrNoSigner), errors.Is(err, ledger.ErrSign):
		return fmt.Errorf("%w: %w", ErrWalletNotPresent, err)
	default:
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
}

func (s *Submitter) entry(
	holder common.Address,
	draft model.PolicyDraft,
	departure int64,
	tx *types.Transaction,
	receipt *types.Receipt,
	outcome model.PurchaseOutcome,
	err error,
	started time.Time,
) model.PurchaseEntry {
	e := model.PurchaseEntry{
		ID:            uuid.New(),
		Network:       s.network,
		TxHash:        tx.Hash().Hex(),
		Holder:        holder.Hex(),
		FlightNumber:  draft.FlightNumber,
		DepartureTime: time.Unix(departure, 0).UTC(),
		Tier:          draft.Tier,
		PremiumWei:    tx.Value(),
		Outcome:       outcome,
		SubmittedAt:   started.UTC(),
	}
	if receipt != nil && receipt.BlockNumber != nil {
		e.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

func (s *Submitter) record(ctx context.Context, logger *zap.Logger, entry model.PurchaseEntry) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, entry); err != nil {
		logger.Warn("journal record failed", zap.Error(err))
	}
}
