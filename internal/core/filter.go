package core

import "time"

// Filter wildcard accepted for both type and category criteria.
const FilterAll = "all"

// DateRange is an inclusive day-granularity window. From is normalized to
// start of day and To to end of day when matching.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the normalized window.
// An inverted range (From after To) contains nothing.
func (r DateRange) Contains(t time.Time) bool {
	from := Date{Time: r.From}.StartOfDay()
	to := Date{Time: r.To}.EndOfDay()
	return !t.Before(from) && !t.After(to)
}

// LastNDays returns the default history window: n days back from now,
// normalized start-of-day through end-of-day. Callers pass this in; the
// engines never assume a window themselves.
func LastNDays(now time.Time, n int) DateRange {
	return DateRange{
		From: Date{Time: now.AddDate(0, 0, -n)}.StartOfDay(),
		To:   Date{Time: now}.EndOfDay(),
	}
}

// FilterCriteria selects transactions by type, category and date window.
// Type and Category accept the "all" wildcard; a nil DateRange matches
// every date.
type FilterCriteria struct {
	Type     string
	Category string
	Range    *DateRange
}

// Matches applies the criteria clauses to a single transaction with
// logical AND semantics. Transactions whose date could not be resolved
// (zero time) are treated as absent and never match.
func (c FilterCriteria) Matches(t Transaction) bool {
	if t.Date.IsZero() {
		return false
	}
	if c.Type != "" && c.Type != FilterAll && string(t.Type) != c.Type {
		return false
	}
	if c.Category != "" && c.Category != FilterAll && t.Category != c.Category {
		return false
	}
	if c.Range != nil && !(c.Range.From.IsZero() || c.Range.To.IsZero()) {
		if !c.Range.Contains(t.Date.Time) {
			return false
		}
	}
	return true
}

// Filter returns the transactions matching the criteria, preserving input
// order. The input slice is never mutated; the result is always a fresh
// slice. Pure and deterministic, so it is safe to re-run on every snapshot.
func Filter(ts []Transaction, criteria FilterCriteria) []Transaction {
	out := make([]Transaction, 0, len(ts))
	for _, t := range ts {
		if criteria.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
