// Package view holds the single-session navigation state of the client.
package view

import "errors"

// State is the view currently shown.
type State int

const (
	Disconnected State = iota
	Purchase
	Confirmation
	MyPolicies
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Purchase:
		return "purchase"
	case Confirmation:
		return "confirmation"
	case MyPolicies:
		return "my-policies"
	default:
		return "unknown"
	}
}

var (
	// ErrBusy is returned while another ledger operation is in flight.
	ErrBusy = errors.New("another operation is in progress")
	// ErrNotConnected is returned for actions that need a wallet session.
	ErrNotConnected = errors.New("wallet not connected")
	// ErrInvalidTransition is returned for navigation the state machine does not allow.
	ErrInvalidTransition = errors.New("invalid view transition")
)
