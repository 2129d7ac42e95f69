package model

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// PolicyStatus is the client-side display status of a policy.
type PolicyStatus string

var (
	StatusPaidOut PolicyStatus = "Paid Out"
	StatusActive  PolicyStatus = "Active"
	StatusExpired PolicyStatus = "Expired"
	StatusPending PolicyStatus = "Pending"
)

// PolicyDraft is user input for a purchase that has not been submitted yet.
// DepartureLocal is a datetime-local string such as "2025-06-01T10:00".
type PolicyDraft struct {
	FlightNumber   string
	DepartureLocal string
	Tier           Tier
}

// Policy is a policy record as stored by the policy contract.
type Policy struct {
	ID            *big.Int
	Holder        common.Address
	FlightNumber  string
	DepartureTime int64
	Premium       *big.Int
	PayoutAmount  *big.Int
	PurchaseTime  int64
	PaidOut       bool
	Active        bool
	Tier          Tier
	Status        PolicyStatus
}

// Departure returns the departure time in UTC, or the zero time when unset.
func (p Policy) Departure() time.Time {
	if p.DepartureTime <= 0 {
		return time.Time{}
	}
	return time.Unix(p.DepartureTime, 0).UTC()
}
