package utils

import (
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
)

// ParseDate accepts a calendar date (YYYY-MM-DD) in loc or a full RFC 3339 timestamp.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if d, err := time.ParseInLocation(time.DateOnly, raw, loc); err == nil {
		return d, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.NewValidationError("date %q must be YYYY-MM-DD or RFC 3339", raw)
}
