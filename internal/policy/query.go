package policy

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/pkg/workerpool"
	"go.uber.org/zap"
)

// DefaultWorkerCount bounds concurrent record reads per listing.
const DefaultWorkerCount = 8

// PartialResult is a listing that kept every record it could read.
// Policies stay in identifier order with unreadable records left out.
type PartialResult struct {
	Policies []model.Policy
	Failed   []FailedRead
}

// QueryService lists the policies owned by a holder.
type QueryService struct {
	logger      *zap.Logger
	reader      PolicyReader
	resolver    StatusResolver
	metrics     Metrics
	limiter     Limiter
	workerCount int
}

// NewQueryService builds a QueryService.
func NewQueryService(reader PolicyReader, resolver StatusResolver, metrics Metrics, workerCount int, logger *zap.Logger) (*QueryService, error) {
	if reader == nil {
		return nil, errors.New("policy reader is required")
	}
	if metrics == nil {
		return nil, errors.New("query metrics is required")
	}
	if workerCount < 1 {
		workerCount = DefaultWorkerCount
	}
	return &QueryService{
		logger:      logger.Named("query"),
		reader:      reader,
		resolver:    resolver,
		metrics:     metrics,
		workerCount: workerCount,
	}, nil
}

// SetLimiter throttles every ledger read through l.
func (q *QueryService) SetLimiter(l Limiter) {
	q.limiter = l
}

// ListPolicies reads the holder's policy ids, then every record concurrently.
// Results follow the id order. Any failed read aborts the listing with ErrQueryFailed.
func (q *QueryService) ListPolicies(ctx context.Context, holder common.Address) (policies []model.Policy, err error) {
	started := time.Now()
	logger := q.logger.With(zap.String("holder", holder.Hex()))

	ids, err := q.policyIDs(ctx, holder)
	if err != nil {
		q.metrics.ObserveList(err, 0, started)
		logger.Error("read policy ids failed", zap.Error(err))
		return nil, err
	}
	defer func() {
		q.metrics.ObserveList(err, len(ids), started)
	}()

	policies, err = workerpool.Map(ctx, q.workerCount, ids, q.readPolicy)
	if err != nil {
		q.metrics.ObserveRecordFailures(1)
		logger.Error("read policy record failed", zap.Int("ids", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	logger.Debug("policies listed", zap.Int("count", len(policies)))
	return policies, nil
}

// ListPoliciesPartial waits for every record read and keeps the ones that succeeded.
// A failed id lookup still fails the whole listing. When some records fail the
// result is returned together with a *PartialQueryError.
func (q *QueryService) ListPoliciesPartial(ctx context.Context, holder common.Address) (PartialResult, error) {
	started := time.Now()
	logger := q.logger.With(zap.String("holder", holder.Hex()))

	ids, err := q.policyIDs(ctx, holder)
	if err != nil {
		q.metrics.ObserveList(err, 0, started)
		logger.Error("read policy ids failed", zap.Error(err))
		return PartialResult{}, err
	}

	outcomes := workerpool.MapAll(ctx, q.workerCount, ids, q.readPolicy)
	result := PartialResult{Policies: make([]model.Policy, 0, len(ids))}
	for i, o := range outcomes {
		if o.Err != nil {
			result.Failed = append(result.Failed, FailedRead{ID: ids[i], Err: o.Err})
			continue
		}
		result.Policies = append(result.Policies, o.Value)
	}

	if len(result.Failed) > 0 {
		perr := &PartialQueryError{Failed: result.Failed}
		q.metrics.ObserveRecordFailures(len(result.Failed))
		q.metrics.ObserveList(perr, len(ids), started)
		logger.Warn("some policy records unreadable", zap.Int("ids", len(ids)), zap.Int("failed", len(result.Failed)), zap.Error(perr))
		return result, perr
	}
	q.metrics.ObserveList(nil, len(ids), started)
	return result, nil
}

func (q *QueryService) policyIDs(ctx context.Context, holder common.Address) ([]*big.Int, error) {
	q.take()
	ids, err := q.reader.PolicyIDs(ctx, holder)
	if err != nil {
		return nil, fmt.Errorf("%w: policy ids of %s: %w", ErrQueryFailed, holder.Hex(), err)
	}
	return ids, nil
}

func (q *QueryService) readPolicy(ctx context.Context, id *big.Int) (model.Policy, error) {
	q.take()
	tuple, err := q.reader.PolicyTuple(ctx, id)
	if err != nil {
		return model.Policy{}, fmt.Errorf("policy %s: %w", id, err)
	}
	p, err := DecodePolicy(id, tuple)
	if err != nil {
		return model.Policy{}, err
	}
	p.Status = q.resolver.Resolve(p)
	return p, nil
}

func (q *QueryService) take() {
	if q.limiter != nil {
		q.limiter.Take()
	}
}
