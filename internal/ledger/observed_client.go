package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ObservedClient wraps a node client with metrics instrumentation.
type ObservedClient struct {
	client     EthClient
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented node client.
func NewObservedClient(client EthClient, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// Dial connects to a node over http(s) or ws(s).
func Dial(ctx context.Context, rawURL string) (*ethclient.Client, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, errors.New("rpc url required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("rpc url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}
	return ethclient.DialContext(ctx, trimmed)
}

// VerifyChainID fails with ErrChainMismatch when the node's chain differs from want. A zero want skips the check.
func VerifyChainID(ctx context.Context, client EthClient, want uint64) error {
	if want == 0 {
		return nil
	}
	got, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("fetch chain id: %w", err)
	}
	if !got.IsUint64() || got.Uint64() != want {
		return fmt.Errorf("%w: node serves %s, configured %d", ErrChainMismatch, got, want)
	}
	return nil
}

// ChainID returns the chain id served by the node.
func (r *ObservedClient) ChainID(ctx context.Context) (id *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("chain_id", err, started)
	}()
	return r.client.ChainID(ctx)
}

// CallContract executes a read-only call.
func (r *ObservedClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) (out []byte, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("call_contract", err, started)
	}()
	return r.client.CallContract(ctx, msg, blockNumber)
}

// CodeAt returns the contract code at an address.
func (r *ObservedClient) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) (code []byte, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("code_at", err, started)
	}()
	return r.client.CodeAt(ctx, account, blockNumber)
}

// PendingNonceAt returns the next nonce for an account.
func (r *ObservedClient) PendingNonceAt(ctx context.Context, account common.Address) (nonce uint64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("pending_nonce_at", err, started)
	}()
	return r.client.PendingNonceAt(ctx, account)
}

// HeaderByNumber returns a block header; nil number means the latest block.
func (r *ObservedClient) HeaderByNumber(ctx context.Context, number *big.Int) (header *types.Header, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("header_by_number", err, started)
	}()
	return r.client.HeaderByNumber(ctx, number)
}

// SuggestGasPrice returns a legacy gas price suggestion.
func (r *ObservedClient) SuggestGasPrice(ctx context.Context) (price *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("suggest_gas_price", err, started)
	}()
	return r.client.SuggestGasPrice(ctx)
}

// SuggestGasTipCap returns a priority fee suggestion.
func (r *ObservedClient) SuggestGasTipCap(ctx context.Context) (tip *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("suggest_gas_tip_cap", err, started)
	}()
	return r.client.SuggestGasTipCap(ctx)
}

// EstimateGas estimates the gas a call needs.
func (r *ObservedClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (gas uint64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("estimate_gas", err, started)
	}()
	return r.client.EstimateGas(ctx, msg)
}

// SendTransaction submits a signed transaction.
func (r *ObservedClient) SendTransaction(ctx context.Context, tx *types.Transaction) (err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_transaction", err, started)
	}()
	return r.client.SendTransaction(ctx, tx)
}

// TransactionReceipt returns the receipt of a mined transaction.
func (r *ObservedClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		// not-yet-mined is the normal answer while polling
		if errors.Is(err, ethereum.NotFound) {
			r.rpcMetrics.Observe("transaction_receipt", nil, started)
			return
		}
		r.rpcMetrics.Observe("transaction_receipt", err, started)
	}()
	return r.client.TransactionReceipt(ctx, txHash)
}
