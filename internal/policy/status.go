package policy

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/flightguard/internal/model"
)

// StatusResolver derives the display status of a policy from its flags.
// Paid out wins over active; a policy with neither flag gets Unresolved.
type StatusResolver struct {
	Unresolved model.PolicyStatus
}

// NewStatusResolver returns a resolver; an empty unresolved status means Expired.
func NewStatusResolver(unresolved model.PolicyStatus) StatusResolver {
	if unresolved == "" {
		unresolved = model.StatusExpired
	}
	return StatusResolver{Unresolved: unresolved}
}

// Resolve returns the status for p.
func (r StatusResolver) Resolve(p model.Policy) model.PolicyStatus {
	switch {
	case p.PaidOut:
		return model.StatusPaidOut
	case p.Active:
		return model.StatusActive
	case r.Unresolved == "":
		return model.StatusExpired
	default:
		return r.Unresolved
	}
}

// ParseUnresolvedStatus accepts the statuses allowed for policies with neither flag set.
func ParseUnresolvedStatus(raw string) (model.PolicyStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "expired":
		return model.StatusExpired, nil
	case "pending":
		return model.StatusPending, nil
	default:
		return "", fmt.Errorf("unresolved status %q must be Expired or Pending", raw)
	}
}
