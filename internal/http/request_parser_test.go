package http

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kakebo/internal/core"
)

func TestUserIDFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/transactions", nil)
	if _, err := UserIDFromRequest(req); err == nil {
		t.Fatal("expected error for missing header")
	}

	req.Header.Set("X-User-ID", "  u1  ")
	userID, err := UserIDFromRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "u1" {
		t.Fatalf("expected trimmed user id, got %q", userID)
	}
}

func TestParseCreateTransactionRequest(t *testing.T) {
	body := `{"type":"expense","category":"Groceries","amount":"12.34","date":"2025-06-10","notes":"  semanal  "}`
	req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))

	tx, err := ParseCreateTransactionRequest(req, "u1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tx.Amount.Cents != 1234 {
		t.Fatalf("expected 1234 cents, got %d", tx.Amount.Cents)
	}
	if tx.Notes != "semanal" {
		t.Fatalf("expected trimmed notes, got %q", tx.Notes)
	}
	if !tx.Date.Equal(core.NewDate(2025, 6, 10).Time) {
		t.Fatalf("unexpected date %v", tx.Date)
	}

	bad := httptest.NewRequest("POST", "/api/transactions",
		strings.NewReader(`{"type":"expense","category":"Groceries","amount":"12.34","date":"10/06/2025"}`))
	if _, err := ParseCreateTransactionRequest(bad, "u1"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}

	unknown := httptest.NewRequest("POST", "/api/transactions",
		strings.NewReader(`{"type":"expense","surprise":true}`))
	if _, err := ParseCreateTransactionRequest(unknown, "u1"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseFilterCriteriaDefaults(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	req := httptest.NewRequest("GET", "/api/transactions", nil)
	criteria, err := ParseFilterCriteria(req, now, 30)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if criteria.Range == nil {
		t.Fatal("expected default range")
	}
	if got := criteria.Range.From; got.After(now.AddDate(0, 0, -29)) {
		t.Fatalf("default window starts too late: %v", got)
	}

	req = httptest.NewRequest("GET", "/api/transactions?from=2025-06-01", nil)
	criteria, err = ParseFilterCriteria(req, now, 30)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if criteria.Range.From.Day() != 1 {
		t.Fatalf("expected explicit from bound, got %v", criteria.Range.From)
	}
	// Missing 'to' closes the range at now
	if criteria.Range.To.IsZero() {
		t.Fatal("expected upper bound to default to now")
	}

	req = httptest.NewRequest("GET", "/api/transactions?from=junk", nil)
	if _, err := ParseFilterCriteria(req, now, 30); err == nil {
		t.Fatal("expected error for malformed from date")
	}
}
