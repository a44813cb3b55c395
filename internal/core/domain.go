package core

import (
	"strings"
	"time"
)

// RecommendedCategories is the suggested category set offered by the form.
// Free-text categories are accepted as well.
var RecommendedCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Entertainment",
	"Health",
	"Bills",
	"Education",
	"Other",
}

type (
	Money struct {
		Cents int64
	}

	// Expense is a single persisted spending entry. Records are immutable
	// once created; the only lifecycle operation after creation is deletion.
	Expense struct {
		ID          string
		Amount      Money
		Category    string
		Date        string // user-facing calendar date, MM/DD/YYYY expected
		Description string
		Timestamp   time.Time // creation instant, never user-editable
	}

	// ExpenseInput is a candidate record as collected from the form,
	// prior to validation and id/timestamp assignment.
	ExpenseInput struct {
		Amount      string
		Category    string
		Date        string
		Description string
	}
)

// ValidationError reports which required field of a candidate is missing
// or invalid. Candidates are rejected before any mutation or I/O.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

var (
	ErrMissingAmount   = &ValidationError{Field: "amount", Reason: "required"}
	ErrInvalidAmount   = &ValidationError{Field: "amount", Reason: "must be a positive number"}
	ErrMissingCategory = &ValidationError{Field: "category", Reason: "required"}
	ErrMissingDate     = &ValidationError{Field: "date", Reason: "required"}
)

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks the candidate and returns the parsed amount on success.
func (in ExpenseInput) Validate() (Money, error) {
	if strings.TrimSpace(in.Amount) == "" {
		return Money{}, ErrMissingAmount
	}
	cents, err := ParseDecimalToCents(in.Amount)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if strings.TrimSpace(in.Category) == "" {
		return Money{}, ErrMissingCategory
	}
	if strings.TrimSpace(in.Date) == "" {
		return Money{}, ErrMissingDate
	}
	return Money{Cents: cents}, nil
}

func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrMissingCategory
	}
	if strings.TrimSpace(e.Date) == "" {
		return ErrMissingDate
	}
	return nil
}

// InMonth reports whether the record's creation timestamp falls in the
// given month and year. Monthly aggregation keys off the timestamp, not
// the user-facing date string.
func (e Expense) InMonth(month time.Month, year int) bool {
	return e.Timestamp.Month() == month && e.Timestamp.Year() == year
}
