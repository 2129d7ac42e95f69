package main

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/flightguard/internal/bootstrap"
	"github.com/goodnatureofminers/flightguard/internal/contracts"
	"github.com/goodnatureofminers/flightguard/internal/journal"
	"github.com/goodnatureofminers/flightguard/internal/ledger"
	"github.com/goodnatureofminers/flightguard/internal/metrics"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/policy"
	"github.com/goodnatureofminers/flightguard/internal/repository/clickhouse"
	"github.com/goodnatureofminers/flightguard/internal/view"
	"github.com/goodnatureofminers/flightguard/internal/wallet"
	"github.com/goodnatureofminers/flightguard/pkg/batcher"
)

// app is the wired client: ledger connection, wallet, services and the view controller.
type app struct {
	logger     *zap.Logger
	registry   *contracts.Registry
	client     *ledger.ObservedClient
	connector  *wallet.Connector
	submitter  *policy.Submitter
	queries    *policy.QueryService
	controller *view.Controller
	journal    *journal.Writer

	closers []func()
}

func loadRegistry(opts options) (*contracts.Registry, error) {
	registry, err := contracts.LoadWithOverride(opts.Deployments)
	if err != nil {
		return nil, err
	}
	if opts.ExplorerURL != "" {
		registry = registry.WithExplorerURL(opts.ExplorerURL)
	}
	return registry, nil
}

func newApp(c *cli) (*app, error) {
	ctx, opts, logger := c.ctx, c.opts, c.log()

	registry, err := loadRegistry(opts)
	if err != nil {
		return nil, err
	}
	a := &app{logger: logger, registry: registry}

	bootstrap.ServeMetrics(ctx, opts.MetricsAddr, logger)

	client, closeClient, err := bootstrap.DialLedger(ctx, opts.RPCURL, registry.Network(), bootstrap.ExpectedChainID(opts.ChainID, registry))
	if err != nil {
		return nil, err
	}
	a.client = client
	a.closers = append(a.closers, closeClient)

	var approver wallet.Approver
	if !opts.Yes {
		approver = wallet.NewPromptApprover(c.in, c.out)
	}
	provider, err := bootstrap.NewWalletProvider(bootstrap.WalletConfig{
		KeystoreDir:   opts.Keystore,
		PrivateKey:    opts.PrivateKey,
		PassphraseEnv: opts.PassphraseEnv,
	}, approver)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.connector = wallet.NewConnector(provider, logger)

	binding, err := bootstrap.PolicyBinding(registry, client, opts.ConfirmPoll)
	if err != nil {
		a.Close()
		return nil, err
	}

	var signers policy.SignerSource
	if provider != nil {
		signers = provider
	}
	a.submitter, err = policy.NewSubmitter(binding, signers, registry, metrics.NewPolicyService(registry.Network()), registry.Network(), logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.queries, err = bootstrap.NewQueryService(binding, registry, bootstrap.QueryConfig{
		Workers:          opts.Workers,
		RPS:              opts.RPCRPS,
		UnresolvedStatus: opts.UnresolvedStatus,
	}, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	if opts.ClickhouseDSN != "" {
		if err := a.startJournal(ctx, opts.ClickhouseDSN); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.controller = view.NewController(a.connector, a.submitter, a.queries, opts.Partial, logger)
	return a, nil
}

func (a *app) startJournal(ctx context.Context, dsn string) error {
	repo, err := clickhouse.NewRepository(dsn, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("open purchase journal: %w", err)
	}
	if err := repo.Ping(ctx); err != nil {
		_ = repo.Close()
		return fmt.Errorf("ping purchase journal: %w", err)
	}
	w, err := journal.NewWriter(repo, a.registry.Network(), batcher.Config{}, a.logger)
	if err != nil {
		_ = repo.Close()
		return err
	}
	w.Start(context.WithoutCancel(ctx))
	a.journal = w
	a.submitter.SetJournal(w)
	a.closers = append(a.closers, func() { _ = repo.Close() }, w.Stop)
	return nil
}

// History lists journaled purchases for holder.
func (a *app) History(ctx context.Context, holder common.Address) ([]model.PurchaseEntry, error) {
	if a.journal == nil {
		return nil, errJournalDisabled
	}
	return a.journal.History(ctx, holder, 0)
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
