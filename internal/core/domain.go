package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// MaxNotesLength bounds the free-text notes field.
const MaxNotesLength = 200

type (
	TransactionType string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is a single recorded income or expense event owned by
	// one user. Records are immutable after creation; ID and CreatedAt
	// are assigned by the store.
	Transaction struct {
		ID        string
		UserID    string
		Type      TransactionType
		Category  string
		Amount    Money
		Date      Date
		Notes     string
		CreatedAt time.Time
	}

	// SavingsGoal is a user's monthly net-savings target. Single value
	// per user, upserted, never versioned. Zero target when absent.
	SavingsGoal struct {
		UserID      string
		TargetCents int64
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyUserID     = errors.New("empty user id")
	ErrNotesTooLong    = errors.New("notes too long (max 200 characters)")
	ErrInvalidGoal     = errors.New("invalid savings goal")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// NewDate creates a Date from year, month, day at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// StartOfDay truncates the date to midnight in its location.
func (d Date) StartOfDay() time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

// EndOfDay returns the last instant of the date's day.
func (d Date) EndOfDay() time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 59, int(time.Second-time.Nanosecond), d.Location())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.UserID) == "" {
		return ErrEmptyUserID
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if !KnownCategory(t.Category) {
		return ErrInvalidCategory
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(t.Notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.UserID) == "" {
		return ErrEmptyUserID
	}
	if g.TargetCents < 0 {
		return ErrInvalidGoal
	}
	return nil
}
