package core

import (
	"strings"
	"testing"
	"time"
)

func validTransaction() Transaction {
	return Transaction{
		ID:       "t1",
		UserID:   "u1",
		Type:     Expense,
		Category: "Groceries",
		Amount:   Money{Cents: 2000},
		Date:     NewDate(2025, 6, 15),
	}
}

func TestTransactionValidate(t *testing.T) {
	if err := validTransaction().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"empty user", func(tr *Transaction) { tr.UserID = " " }, ErrEmptyUserID},
		{"bad type", func(tr *Transaction) { tr.Type = "transfer" }, ErrInvalidType},
		{"unknown category", func(tr *Transaction) { tr.Category = "Lottery" }, ErrInvalidCategory},
		{"zero amount", func(tr *Transaction) { tr.Amount = Money{} }, ErrInvalidAmount},
		{"negative amount", func(tr *Transaction) { tr.Amount = Money{Cents: -5} }, ErrInvalidAmount},
		{"zero date", func(tr *Transaction) { tr.Date = Date{} }, ErrInvalidDate},
		{"notes too long", func(tr *Transaction) { tr.Notes = strings.Repeat("x", MaxNotesLength+1) }, ErrNotesTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := validTransaction()
			tc.mutate(&tr)
			if err := tr.Validate(); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("notes at limit", func(t *testing.T) {
		tr := validTransaction()
		tr.Notes = strings.Repeat("x", MaxNotesLength)
		if err := tr.Validate(); err != nil {
			t.Fatalf("expected ok, got %v", err)
		}
	})
}

func TestSavingsGoalValidate(t *testing.T) {
	if err := (SavingsGoal{UserID: "u1", TargetCents: 0}).Validate(); err != nil {
		t.Fatalf("zero target is valid, got %v", err)
	}
	if err := (SavingsGoal{UserID: "u1", TargetCents: 50000}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (SavingsGoal{UserID: "u1", TargetCents: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative target")
	}
	if err := (SavingsGoal{TargetCents: 100}).Validate(); err == nil {
		t.Fatalf("expected error for missing user id")
	}
}

func TestDateDayBounds(t *testing.T) {
	d := Date{Time: time.Date(2025, 3, 10, 14, 30, 12, 0, time.UTC)}

	start := d.StartOfDay()
	if start != time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected start of day: %v", start)
	}

	end := d.EndOfDay()
	if !end.After(d.Time) || end.Day() != 10 {
		t.Fatalf("unexpected end of day: %v", end)
	}
	if !end.Before(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end of day leaked into next day: %v", end)
	}
}
