package core

import "sort"

// PeriodSummary holds derived income/expense/net totals over a transaction
// set. Computed, never persisted; recomputed on every view.
type PeriodSummary struct {
	IncomeCents  int64
	ExpenseCents int64
	NetCents     int64
}

// SavingsProgress reports how actual net savings compare to a goal.
type SavingsProgress struct {
	Percent         float64
	DifferenceCents int64
}

// CategoryAmount represents an amount aggregated under a category label.
type CategoryAmount struct {
	Label  string
	Amount Money
}

// Summarize folds a transaction list into period totals. The sum is
// commutative, so the result is independent of input order. Transactions
// with an unresolvable date are skipped, mirroring the ingestion boundary's
// skip-and-log policy. An empty input yields all zeros.
func Summarize(ts []Transaction) PeriodSummary {
	var s PeriodSummary
	for _, t := range ts {
		if t.Date.IsZero() {
			continue
		}
		switch t.Type {
		case Income:
			s.IncomeCents += t.Amount.Cents
		case Expense:
			s.ExpenseCents += t.Amount.Cents
		}
	}
	s.NetCents = s.IncomeCents - s.ExpenseCents
	return s
}

// Progress computes savings-goal progress from actual net savings and the
// goal target, both in cents. The percentage is clamped to [0, 100]. A zero
// target counts as trivially met when any positive savings exist. Stores
// reject negative targets, so they are not handled here.
func Progress(actualCents, targetCents int64) SavingsProgress {
	p := SavingsProgress{DifferenceCents: actualCents - targetCents}
	switch {
	case targetCents > 0:
		pct := float64(actualCents) / float64(targetCents) * 100
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		p.Percent = pct
	case actualCents > 0:
		p.Percent = 100
	default:
		p.Percent = 0
	}
	return p
}

// Breakdown groups expense amounts by category display label. Callers
// restrict the window by filtering first; the engine only restricts to
// expenses. Should two category codes ever share a label, their amounts
// accumulate under it rather than overwrite. The mapping is unordered;
// ordering is a presentation concern (see RankBreakdown).
func Breakdown(ts []Transaction) map[string]int64 {
	byLabel := make(map[string]int64)
	for _, t := range ts {
		if t.Type != Expense || t.Date.IsZero() {
			continue
		}
		byLabel[CategoryLabel(t.Category)] += t.Amount.Cents
	}
	return byLabel
}

// RankBreakdown orders a breakdown by descending amount for display,
// breaking ties by label so the output is deterministic.
func RankBreakdown(byLabel map[string]int64) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(byLabel))
	for label, cents := range byLabel {
		out = append(out, CategoryAmount{Label: label, Amount: Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Label < out[j].Label
	})
	return out
}
