package ledger

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// DefaultPollInterval spaces receipt lookups while waiting for inclusion.
const DefaultPollInterval = 2 * time.Second

// TransactOpts carries the authorisation and value for a state-changing call.
type TransactOpts struct {
	Signer Signer
	Value  *big.Int
	// GasLimit overrides gas estimation when non-zero.
	GasLimit uint64
}

// BoundContract pairs a contract address with its ABI over a node client.
type BoundContract struct {
	address      common.Address
	abi          abi.ABI
	client       EthClient
	pollInterval time.Duration
}

// NewBoundContract binds a deployed contract.
func NewBoundContract(address common.Address, parsed abi.ABI, client EthClient) *BoundContract {
	return &BoundContract{
		address:      address,
		abi:          parsed,
		client:       client,
		pollInterval: DefaultPollInterval,
	}
}

// WithPollInterval returns a copy that waits for receipts at the given interval.
func (c *BoundContract) WithPollInterval(interval time.Duration) *BoundContract {
	clone := *c
	if interval > 0 {
		clone.pollInterval = interval
	}
	return &clone
}

// Address returns the bound contract address.
func (c *BoundContract) Address() common.Address {
	return c.address
}

// Call runs a read-only method against the latest block and returns its unpacked outputs.
func (c *BoundContract) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	out, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCall, method, err)
	}
	if len(out) == 0 {
		code, err := c.client.CodeAt(ctx, c.address, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: code at %s: %w", ErrCall, method, c.address.Hex(), err)
		}
		if len(code) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoCode, c.address.Hex())
		}
	}
	values, err := c.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack %s: %w", ErrCall, method, err)
	}
	return values, nil
}

// Transact signs and sends a state-changing method call. It returns once the node accepts the transaction.
func (c *BoundContract) Transact(ctx context.Context, opts TransactOpts, method string, args ...any) (*types.Transaction, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	to := c.address
	return transact(ctx, c.client, opts, &to, input)
}

// WaitMined blocks until tx is included and succeeded.
func (c *BoundContract) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return WaitMined(ctx, c.client, tx.Hash(), c.pollInterval)
}

func transact(ctx context.Context, client EthClient, opts TransactOpts, to *common.Address, input []byte) (*types.Transaction, error) {
	if opts.Signer == nil {
		return nil, ErrNoSigner
	}
	from := opts.Signer.Address()
	value := opts.Value
	if value == nil {
		value = new(big.Int)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: chain id: %w", ErrSubmit, err)
	}
	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("%w: nonce for %s: %w", ErrSubmit, from.Hex(), err)
	}
	head, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: latest header: %w", ErrSubmit, err)
	}

	gas := opts.GasLimit
	if gas == 0 {
		gas, err = client.EstimateGas(ctx, ethereum.CallMsg{From: from, To: to, Value: value, Data: input})
		if err != nil {
			return nil, fmt.Errorf("%w: estimate gas: %w", ErrSubmit, err)
		}
	}

	var tx *types.Transaction
	if head.BaseFee != nil {
		tip, err := client.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: gas tip: %w", ErrSubmit, err)
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
		tx = types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       gas,
			To:        to,
			Value:     value,
			Data:      input,
		})
	} else {
		price, err := client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: gas price: %w", ErrSubmit, err)
		}
		tx = types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: price,
			Gas:      gas,
			To:       to,
			Value:    value,
			Data:     input,
		})
	}

	signed, err := opts.Signer.SignTx(ctx, tx, chainID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSign, err)
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmit, err)
	}
	return signed, nil
}
