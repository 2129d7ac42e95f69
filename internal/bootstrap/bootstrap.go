// Package bootstrap wires the shared pieces of the flightguard binaries.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/flightguard/internal/contracts"
	"github.com/goodnatureofminers/flightguard/internal/ledger"
	"github.com/goodnatureofminers/flightguard/internal/metrics"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/policy"
	"github.com/goodnatureofminers/flightguard/internal/wallet"
)

// NewLogger returns a development logger, or a JSON production logger when jsonOutput is set.
func NewLogger(jsonOutput bool) (*zap.Logger, error) {
	if jsonOutput {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// DialLedger connects to the node behind rawURL, records RPC metrics for every call
// under network and checks that the node serves chainID. A zero chainID skips the
// check. The returned func closes the connection.
func DialLedger(ctx context.Context, rawURL string, network model.Network, chainID uint64) (*ledger.ObservedClient, func(), error) {
	raw, err := ledger.Dial(ctx, rawURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial ledger: %w", err)
	}
	client := ledger.NewObservedClient(raw, metrics.NewRPCClient(network))

	if err := ledger.VerifyChainID(ctx, client, chainID); err != nil {
		raw.Close()
		return nil, nil, err
	}
	return client, raw.Close, nil
}

// ExpectedChainID prefers an explicit override over the registry's chain id.
func ExpectedChainID(override uint64, registry *contracts.Registry) uint64 {
	if override != 0 {
		return override
	}
	return registry.ChainID()
}

// WalletConfig selects the account source. The keystore wins over a raw key.
type WalletConfig struct {
	KeystoreDir   string
	PrivateKey    string
	PassphraseEnv string
}

// NewWalletProvider returns the configured provider, or nil when no wallet is set up.
func NewWalletProvider(cfg WalletConfig, approver wallet.Approver) (wallet.Provider, error) {
	switch {
	case cfg.KeystoreDir != "":
		return wallet.NewKeystoreProvider(cfg.KeystoreDir, wallet.NewPassphrase(cfg.PassphraseEnv), approver), nil
	case cfg.PrivateKey != "":
		p, err := wallet.NewKeyProvider(cfg.PrivateKey, approver)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, nil
	}
}

// QueryConfig tunes policy listing.
type QueryConfig struct {
	Workers          int
	RPS              int
	UnresolvedStatus string
}

// PolicyBinding binds the policy contract of registry to client.
func PolicyBinding(registry *contracts.Registry, client ledger.EthClient, pollInterval time.Duration) (*policy.Binding, error) {
	c, err := registry.Contract(contracts.NamePolicy)
	if err != nil {
		return nil, err
	}
	bound := ledger.NewBoundContract(c.Address, c.ABI, client)
	if pollInterval > 0 {
		bound = bound.WithPollInterval(pollInterval)
	}
	return policy.NewBinding(bound), nil
}

// NewQueryService builds the policy listing service with optional read throttling.
func NewQueryService(reader policy.PolicyReader, registry *contracts.Registry, cfg QueryConfig, logger *zap.Logger) (*policy.QueryService, error) {
	unresolved, err := policy.ParseUnresolvedStatus(cfg.UnresolvedStatus)
	if err != nil {
		return nil, err
	}
	svc, err := policy.NewQueryService(
		reader,
		policy.NewStatusResolver(unresolved),
		metrics.NewPolicyService(registry.Network()),
		cfg.Workers,
		logger,
	)
	if err != nil {
		return nil, err
	}
	if cfg.RPS > 0 {
		svc.SetLimiter(ratelimit.New(cfg.RPS))
	}
	return svc, nil
}

// ServeMetrics exposes /metrics on addr until ctx ends. An empty addr disables it.
func ServeMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", zap.Error(err))
		}
	}()
}
