package policy

import (
	"fmt"
	"strings"
	"time"
)

// DepartureLayout is the datetime-local form used for drafts, e.g. "2025-06-01T10:00".
const DepartureLayout = "2006-01-02T15:04"

var departureLayouts = []string{DepartureLayout, "2006-01-02T15:04:05"}

// ParseDeparture reads a local datetime as UTC and returns whole seconds since the epoch.
// The host time zone never affects the result.
func ParseDeparture(local string) (int64, error) {
	local = strings.TrimSpace(local)
	if local == "" {
		return 0, fmt.Errorf("%w: departure time is required", ErrInvalidDraft)
	}
	for _, layout := range departureLayouts {
		t, err := time.ParseInLocation(layout, local, time.UTC)
		if err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("%w: departure %q is not of the form %s", ErrInvalidDraft, local, DepartureLayout)
}

// FormatDeparture renders epoch seconds back in DepartureLayout, UTC.
func FormatDeparture(epoch int64) string {
	return time.Unix(epoch, 0).UTC().Format(DepartureLayout)
}

// DisplayDeparture renders a departure for people; zero means unknown.
func DisplayDeparture(epoch int64) string {
	if epoch <= 0 {
		return "N/A"
	}
	return time.Unix(epoch, 0).UTC().Format("2006-01-02 15:04 UTC")
}
