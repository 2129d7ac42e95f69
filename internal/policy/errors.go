package policy

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidDraft          = errors.New("invalid policy draft")
	ErrWalletNotPresent      = errors.New("wallet not present")
	ErrUserRejectedSignature = errors.New("user rejected signature")
	ErrSubmissionFailed      = errors.New("submission failed")
	ErrConfirmationFailed    = errors.New("confirmation failed")
	ErrQueryFailed           = errors.New("policy query failed")
	ErrDecode                = errors.New("decode policy record")
)

// FailedRead is a policy record that could not be read.
type FailedRead struct {
	ID  *big.Int
	Err error
}

// PartialQueryError reports the records a partial listing could not read.
// It matches ErrQueryFailed.
type PartialQueryError struct {
	Failed []FailedRead
}

func (e *PartialQueryError) Error() string {
	ids := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		ids[i] = f.ID.String()
	}
	return fmt.Sprintf("%s: %d record(s) unreadable: %s", ErrQueryFailed, len(e.Failed), strings.Join(ids, ", "))
}

func (e *PartialQueryError) Is(target error) bool {
	return target == ErrQueryFailed
}

// Unwrap exposes the individual read errors.
func (e *PartialQueryError) Unwrap() []error {
	errs := make([]error, len(e.Failed))
	for i, f := range e.Failed {
		errs[i] = f.Err
	}
	return errs
}
