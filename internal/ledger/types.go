// Package ledger talks to the Ethereum node that hosts the FlightGuard contracts.
package ledger

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// EthClient is the subset of the node JSON-RPC API the client uses. *ethclient.Client satisfies it.
	EthClient interface {
		ChainID(ctx context.Context) (*big.Int, error)
		CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
		CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
		PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
		HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		SuggestGasTipCap(ctx context.Context) (*big.Int, error)
		EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
		SendTransaction(ctx context.Context, tx *types.Transaction) error
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Signer authorises transactions on behalf of one account.
	Signer interface {
		Address() common.Address
		SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
	}
)
