package wallet

import "errors"

var (
	// ErrNoWallet is returned when no wallet is configured or it holds no accounts.
	ErrNoWallet = errors.New("no wallet available")
	// ErrConnectionRejected is returned when account access is refused or the provider fails.
	ErrConnectionRejected = errors.New("wallet connection rejected")
	// ErrSignatureRejected is returned when the owner declines to sign a transaction.
	ErrSignatureRejected = errors.New("signature rejected")
	// ErrUnknownAccount is returned when a signer is requested for an account the wallet does not hold.
	ErrUnknownAccount = errors.New("account not held by wallet")
)
