package core

import (
	"math/rand"
	"testing"
)

func TestSummarizeScenario(t *testing.T) {
	// income 1000 + expense 400 -> net 600
	history := []Transaction{
		tx("a", Income, "Salary", 100000, NewDate(2025, 6, 1)),
		tx("b", Expense, "Groceries", 40000, NewDate(2025, 6, 2)),
	}
	got := Summarize(history)
	want := PeriodSummary{IncomeCents: 100000, ExpenseCents: 40000, NetCents: 60000}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSummarizeEmptyIdentity(t *testing.T) {
	if got := Summarize(nil); got != (PeriodSummary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
	if got := Summarize([]Transaction{}); got != (PeriodSummary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	history := sampleHistory()
	want := Summarize(history)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]Transaction, len(history))
		copy(shuffled, history)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := Summarize(shuffled); got != want {
			t.Fatalf("permutation %d changed totals: %+v vs %+v", i, got, want)
		}
	}
}

func TestSummarizeSkipsUnresolvableDates(t *testing.T) {
	history := []Transaction{
		tx("a", Income, "Salary", 1000, NewDate(2025, 6, 1)),
		tx("z", Expense, "Groceries", 500, Date{}),
	}
	got := Summarize(history)
	if got.ExpenseCents != 0 || got.IncomeCents != 1000 {
		t.Fatalf("zero-date transaction leaked into totals: %+v", got)
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name        string
		actual      int64
		target      int64
		wantPercent float64
		wantDiff    int64
	}{
		{"clamped above target", 60000, 50000, 100, 10000},
		{"zero target positive savings", 5000, 0, 100, 5000},
		{"zero target zero savings", 0, 0, 0, 0},
		{"zero target negative savings", -2000, 0, 0, -2000},
		{"halfway", 25000, 50000, 50, -25000},
		{"exactly on target", 50000, 50000, 100, 0},
		{"negative savings clamp to zero", -10000, 50000, 0, -60000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Progress(tc.actual, tc.target)
			if got.Percent != tc.wantPercent {
				t.Fatalf("percent: expected %v, got %v", tc.wantPercent, got.Percent)
			}
			if got.DifferenceCents != tc.wantDiff {
				t.Fatalf("difference: expected %d, got %d", tc.wantDiff, got.DifferenceCents)
			}
		})
	}
}

func TestProgressClampBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		actual := rng.Int63n(2_000_000) - 1_000_000
		target := rng.Int63n(1_000_000)
		p := Progress(actual, target)
		if p.Percent < 0 || p.Percent > 100 {
			t.Fatalf("progress out of bounds: actual=%d target=%d percent=%v", actual, target, p.Percent)
		}
	}
}

func TestBreakdownGroupsByLabel(t *testing.T) {
	history := []Transaction{
		tx("a", Expense, "Groceries", 2000, NewDate(2025, 6, 1)),
		tx("b", Expense, "Groceries", 3000, NewDate(2025, 6, 2)),
		tx("c", Expense, "Transportation", 1500, NewDate(2025, 6, 3)),
		tx("d", Income, "Salary", 100000, NewDate(2025, 6, 4)), // income excluded
	}
	got := Breakdown(history)
	if got["Alimentos"] != 5000 {
		t.Fatalf(`expected "Alimentos" = 5000, got %d`, got["Alimentos"])
	}
	if got["Transporte"] != 1500 {
		t.Fatalf(`expected "Transporte" = 1500, got %d`, got["Transporte"])
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 labels, got %v", got)
	}
}

func TestBreakdownConservation(t *testing.T) {
	history := sampleHistory()
	window := DateRange{From: NewDate(2025, 6, 1).Time, To: NewDate(2025, 6, 30).Time}
	windowed := Filter(history, FilterCriteria{Range: &window})

	var total int64
	for _, cents := range Breakdown(windowed) {
		total += cents
	}

	expenses := Summarize(Filter(windowed, FilterCriteria{Type: "expense"})).ExpenseCents
	if total != expenses {
		t.Fatalf("breakdown total %d != expense total %d", total, expenses)
	}
}

func TestBreakdownEmpty(t *testing.T) {
	got := Breakdown([]Transaction{
		tx("a", Income, "Salary", 1000, NewDate(2025, 6, 1)),
	})
	if len(got) != 0 {
		t.Fatalf("expected empty breakdown, got %v", got)
	}
}

func TestRankBreakdown(t *testing.T) {
	ranked := RankBreakdown(map[string]int64{
		"Transporte": 1500,
		"Alimentos":  5000,
		"Libros":     1500,
	})
	if len(ranked) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(ranked))
	}
	if ranked[0].Label != "Alimentos" || ranked[0].Amount.Cents != 5000 {
		t.Fatalf("expected Alimentos first, got %+v", ranked[0])
	}
	// Equal amounts order by label
	if ranked[1].Label != "Libros" || ranked[2].Label != "Transporte" {
		t.Fatalf("tie-break by label failed: %+v", ranked[1:])
	}
}
