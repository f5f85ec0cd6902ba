// Package http provides the JSON API server and handler implementations.
//
// This file implements utilities for parsing and validating HTTP request
// data: user identification, transaction payloads, and filter criteria.

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kakebo/internal/core"
)

// userIDHeader identifies the acting user on every /api route.
const userIDHeader = "X-User-ID"

var errMissingUserID = errors.New("missing X-User-ID header")

// UserIDFromRequest extracts and validates the user ID header.
func UserIDFromRequest(r *http.Request) (string, error) {
	userID := strings.TrimSpace(r.Header.Get(userIDHeader))
	if userID == "" {
		return "", errMissingUserID
	}
	return userID, nil
}

// createTransactionRequest is the JSON body of POST /api/transactions.
// Amount is a decimal euro string ("12.34") to keep floats off the wire.
type createTransactionRequest struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
}

// ParseCreateTransactionRequest decodes and validates the creation payload.
// Full validation happens in core; this only shapes the data.
func ParseCreateTransactionRequest(r *http.Request, userID string) (core.Transaction, error) {
	var req createTransactionRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return core.Transaction{}, fmt.Errorf("decode request body: %w", err)
	}

	cents, err := core.ParseDecimalToCents(strings.TrimSpace(req.Amount))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("invalid amount %q: %w", req.Amount, err)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	return core.Transaction{
		UserID:   userID,
		Type:     core.TransactionType(strings.TrimSpace(req.Type)),
		Category: strings.TrimSpace(req.Category),
		Amount:   core.Money{Cents: cents},
		Date:     date,
		Notes:    sanitizeInput(req.Notes),
	}, nil
}

// ParseFilterCriteria builds filter criteria from query parameters. Absent
// date bounds fall back to the server's default history window ending now.
func ParseFilterCriteria(r *http.Request, now time.Time, windowDays int) (core.FilterCriteria, error) {
	q := r.URL.Query()

	typ := strings.TrimSpace(q.Get("type"))
	switch typ {
	case "", core.FilterAll, string(core.Income), string(core.Expense):
	default:
		return core.FilterCriteria{}, fmt.Errorf("invalid type %q: must be income, expense or all", typ)
	}

	category := strings.TrimSpace(q.Get("category"))

	fromStr := strings.TrimSpace(q.Get("from"))
	toStr := strings.TrimSpace(q.Get("to"))

	var rng core.DateRange
	if fromStr == "" && toStr == "" {
		rng = core.LastNDays(now, windowDays)
	} else {
		from := core.NewDate(1970, 1, 1)
		to := core.Date{Time: now}
		var err error
		if fromStr != "" {
			if from, err = parseDate(fromStr); err != nil {
				return core.FilterCriteria{}, fmt.Errorf("invalid 'from' date %q: %w", fromStr, err)
			}
		}
		if toStr != "" {
			if to, err = parseDate(toStr); err != nil {
				return core.FilterCriteria{}, fmt.Errorf("invalid 'to' date %q: %w", toStr, err)
			}
		}
		rng = core.DateRange{From: from.Time, To: to.Time}
	}

	return core.FilterCriteria{
		Type:     typ,
		Category: category,
		Range:    &rng,
	}, nil
}

// updateGoalRequest is the JSON body of PUT /api/savings-goal.
type updateGoalRequest struct {
	TargetCents int64 `json:"target_cents"`
}

// ParseUpdateGoalRequest decodes the savings goal payload.
func ParseUpdateGoalRequest(r *http.Request, userID string) (core.SavingsGoal, error) {
	var req updateGoalRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return core.SavingsGoal{}, fmt.Errorf("decode request body: %w", err)
	}

	return core.SavingsGoal{
		UserID:      userID,
		TargetCents: req.TargetCents,
	}, nil
}

// parseDate parses a date string in YYYY-MM-DD format.
func parseDate(dateStr string) (core.Date, error) {
	parsedTime, err := time.Parse(time.DateOnly, strings.TrimSpace(dateStr))
	if err != nil {
		return core.Date{}, err
	}
	return core.Date{Time: parsedTime}, nil
}

// sanitizeInput drops control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
