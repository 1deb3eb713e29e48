package domain

import (
	"strings"
	"time"
)

// DateScope narrows a transaction listing to the calendar day, month or year of a reference date.
type DateScope string

const (
	ScopeAll   DateScope = ""
	ScopeDay   DateScope = "day"
	ScopeMonth DateScope = "month"
	ScopeYear  DateScope = "year"
)

// IsValid reports whether s is a known scope.
func (s DateScope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeDay, ScopeMonth, ScopeYear:
		return true
	}
	return false
}

// TransactionFilter describes which ledger entries a listing should return.
// The zero value matches everything.
type TransactionFilter struct {
	Query    string            // case-insensitive match on title or description
	Scope    DateScope         // ignored when Date is zero
	Date     time.Time         // reference date for Scope
	Kinds    []TransactionKind // empty means all kinds
	Location *time.Location    // calendar used for Scope; nil means UTC
}

// Matches reports whether t passes every criterion of f.
func (f TransactionFilter) Matches(t Transaction) bool {
	if len(f.Kinds) > 0 && !containsKind(f.Kinds, t.Kind) {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		inTitle := strings.Contains(strings.ToLower(t.Title), q)
		inDescription := t.Description != nil && strings.Contains(strings.ToLower(*t.Description), q)
		if !inTitle && !inDescription {
			return false
		}
	}

	if f.Scope == ScopeAll || f.Date.IsZero() {
		return true
	}

	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	got := t.Date.In(loc)
	ref := f.Date.In(loc)

	switch f.Scope {
	case ScopeDay:
		return got.Year() == ref.Year() && got.YearDay() == ref.YearDay()
	case ScopeMonth:
		return got.Year() == ref.Year() && got.Month() == ref.Month()
	case ScopeYear:
		return got.Year() == ref.Year()
	}
	return true
}

func containsKind(kinds []TransactionKind, k TransactionKind) bool {
	for _, candidate := range kinds {
		if candidate == k {
			return true
		}
	}
	return false
}
