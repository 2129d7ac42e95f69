package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Tier is the coverage level of a policy. Valid tiers are 1 through 3.
type Tier uint8

const (
	TierBasic      Tier = 1
	TierPremium    Tier = 2
	TierEnterprise Tier = 3
)

// Tiers lists every purchasable tier in ascending order.
var Tiers = []Tier{TierBasic, TierPremium, TierEnterprise}

// Valid reports whether t is one of the purchasable tiers.
func (t Tier) Valid() bool {
	return t >= TierBasic && t <= TierEnterprise
}

// Name returns the display name of the tier.
func (t Tier) Name() string {
	switch t {
	case TierBasic:
		return "Basic"
	case TierPremium:
		return "Premium"
	case TierEnterprise:
		return "Enterprise"
	default:
		return "Unknown"
	}
}

// DelayThreshold is the departure delay that triggers a payout for the tier.
func (t Tier) DelayThreshold() time.Duration {
	if !t.Valid() {
		return 0
	}
	return time.Duration(t) * time.Hour
}

// String renders the tier with its threshold, e.g. "Premium (2hr threshold)".
func (t Tier) String() string {
	if !t.Valid() {
		return t.Name()
	}
	return fmt.Sprintf("%s (%dhr threshold)", t.Name(), int(t))
}

// ParseTier accepts a tier number ("2") or a case-insensitive tier name ("premium").
func ParseTier(raw string) (Tier, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseUint(raw, 10, 8); err == nil {
		t := Tier(n)
		if !t.Valid() {
			return 0, fmt.Errorf("tier %d out of range 1-3", n)
		}
		return t, nil
	}
	for _, t := range Tiers {
		if strings.EqualFold(raw, t.Name()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tier %q", raw)
}
