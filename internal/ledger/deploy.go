package ledger

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Deploy sends a contract creation transaction and returns the address the contract will live at.
func Deploy(ctx context.Context, client EthClient, signer Signer, artifact Artifact, args ...any) (common.Address, *types.Transaction, error) {
	if signer == nil {
		return common.Address{}, nil, ErrNoSigner
	}
	if len(artifact.Bytecode) == 0 {
		return common.Address{}, nil, fmt.Errorf("artifact %q has no bytecode", artifact.Name)
	}
	ctorArgs, err := packConstructor(artifact.ABI, args)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("pack constructor of %q: %w", artifact.Name, err)
	}
	input := make([]byte, 0, len(artifact.Bytecode)+len(ctorArgs))
	input = append(input, artifact.Bytecode...)
	input = append(input, ctorArgs...)

	tx, err := transact(ctx, client, TransactOpts{Signer: signer}, nil, input)
	if err != nil {
		return common.Address{}, nil, err
	}
	return crypto.CreateAddress(signer.Address(), tx.Nonce()), tx, nil
}

func packConstructor(parsed abi.ABI, args []any) ([]byte, error) {
	if len(parsed.Constructor.Inputs) == 0 {
		if len(args) > 0 {
			return nil, fmt.Errorf("constructor takes no arguments, got %d", len(args))
		}
		return nil, nil
	}
	return parsed.Pack("", args...)
}
