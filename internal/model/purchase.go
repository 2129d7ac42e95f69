package model

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// PurchaseOutcome is the final state of a submitted purchase as seen by this client.
type PurchaseOutcome string

var (
	PurchaseConfirmed PurchaseOutcome = "confirmed"
	PurchaseReverted  PurchaseOutcome = "reverted"
	PurchaseFailed    PurchaseOutcome = "failed"
)

// PurchaseEntry is one row of the purchase journal.
type PurchaseEntry struct {
	ID            uuid.UUID
	Network       Network
	TxHash        string
	Holder        string
	FlightNumber  string
	DepartureTime time.Time
	Tier          Tier
	PremiumWei    *big.Int
	BlockNumber   uint64
	Outcome       PurchaseOutcome
	Error         string
	SubmittedAt   time.Time
}
