package ledger

import "errors"

var (
	// ErrNoSigner is returned when a write is attempted without a signer.
	ErrNoSigner = errors.New("no signer")
	// ErrSign wraps failures to sign, including a wallet refusing to sign.
	ErrSign = errors.New("sign transaction")
	// ErrSubmit wraps failures to prepare or send a transaction to the node.
	ErrSubmit = errors.New("submit transaction")
	// ErrReverted is returned when a mined transaction has a failed status.
	ErrReverted = errors.New("transaction reverted")
	// ErrNotMined is returned when waiting for inclusion ends before a receipt appears.
	ErrNotMined = errors.New("transaction not mined")
	// ErrCall wraps failures of read-only contract calls.
	ErrCall = errors.New("contract call")
	// ErrNoCode is returned when a call targets an address without contract code.
	ErrNoCode = errors.New("no contract code at address")
	// ErrChainMismatch is returned when the node serves a different chain than configured.
	ErrChainMismatch = errors.New("chain id mismatch")
)
