package core

import (
	"errors"
	"testing"
	"time"
)

func TestExpenseInputValidate(t *testing.T) {
	good := ExpenseInput{Amount: "42.50", Category: "Food", Date: "03/15/2024"}
	m, err := good.Validate()
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if m.Cents != 4250 {
		t.Fatalf("expected 4250 cents, got %d", m.Cents)
	}

	cases := []struct {
		in   ExpenseInput
		want *ValidationError
	}{
		{ExpenseInput{Amount: "", Category: "Food", Date: "03/15/2024"}, ErrMissingAmount},
		{ExpenseInput{Amount: "  ", Category: "Food", Date: "03/15/2024"}, ErrMissingAmount},
		{ExpenseInput{Amount: "0", Category: "Food", Date: "03/15/2024"}, ErrInvalidAmount},
		{ExpenseInput{Amount: "-5", Category: "Food", Date: "03/15/2024"}, ErrInvalidAmount},
		{ExpenseInput{Amount: "abc", Category: "Food", Date: "03/15/2024"}, ErrInvalidAmount},
		{ExpenseInput{Amount: "10", Category: "", Date: "03/15/2024"}, ErrMissingCategory},
		{ExpenseInput{Amount: "10", Category: "Food", Date: ""}, ErrMissingDate},
	}
	for i, tc := range cases {
		_, err := tc.in.Validate()
		if err == nil {
			t.Fatalf("case %d expected error", i)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("case %d expected ValidationError, got %T", i, err)
		}
		if verr != tc.want {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, verr)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
}

func TestExpenseInMonth(t *testing.T) {
	e := Expense{Timestamp: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}
	if !e.InMonth(time.March, 2024) {
		t.Fatalf("expected March 2024 to match")
	}
	if e.InMonth(time.April, 2024) {
		t.Fatalf("expected April to not match")
	}
	if e.InMonth(time.March, 2023) {
		t.Fatalf("expected 2023 to not match")
	}
}
