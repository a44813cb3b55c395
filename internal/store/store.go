// Package store owns the authoritative expense collection. It mediates
// all reads and writes against durable storage and computes derived
// statistics on demand.
//
// Every mutation is a full read-modify-write of the whole collection as
// one serialized blob under a single key. That is acceptable for a small
// personal dataset and is a known scalability ceiling, not an accident.
package store

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"outlay/internal/core"
)

// StorageKey is the single durable key the collection lives under.
const StorageKey = "expenses"

// Store holds the in-memory expense collection and persists it through a
// KV backend. All operations serialize on one mutex so two mutating
// callers can never lose each other's update.
type Store struct {
	mu    sync.Mutex
	kv    KV
	items []core.Expense // newest first

	now   func() time.Time
	newID func() string
}

func New(kv KV) *Store {
	return &Store{
		kv:    kv,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Load reads the entire collection from durable storage, replacing the
// in-memory state. A missing key yields an empty collection. An
// undecodable payload resets the collection to empty and returns a
// *ReadError; the process carries on.
func (s *Store) Load(ctx context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.items = nil
		return nil, &ReadError{Err: err}
	}
	if len(data) == 0 {
		s.items = nil
		slog.InfoContext(ctx, "No stored expenses, starting empty")
		return nil, nil
	}

	items, err := decodeExpenses(data)
	if err != nil {
		s.items = nil
		slog.ErrorContext(ctx, "Stored expenses are corrupted, falling back to empty", "error", err)
		return nil, &ReadError{Err: err}
	}

	s.items = items
	slog.InfoContext(ctx, "Expenses loaded", "count", len(items))
	return s.copyLocked(), nil
}

// Append validates the candidate, assigns an id and creation timestamp,
// prepends the record and persists the full collection. A validation
// failure leaves state and storage untouched; a persist failure rolls
// the prepend back and returns a *WriteError.
func (s *Store) Append(ctx context.Context, in core.ExpenseInput) (core.Expense, error) {
	amount, err := in.Validate()
	if err != nil {
		return core.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := core.Expense{
		ID:          s.newID(),
		Amount:      amount,
		Category:    in.Category,
		Date:        in.Date,
		Description: in.Description,
		Timestamp:   s.now(),
	}

	s.items = append([]core.Expense{e}, s.items...)
	if err := s.persistLocked(ctx); err != nil {
		s.items = s.items[1:]
		return core.Expense{}, err
	}

	slog.InfoContext(ctx, "Expense recorded",
		"id", e.ID,
		"category", e.Category,
		"amount_cents", e.Amount.Cents,
		"date", e.Date)
	return e, nil
}

// Remove deletes the record with the given id and persists the result.
// An absent id is a no-op, not an error, and issues no write. A persist
// failure reinserts the record at its original position.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, e := range s.items {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		slog.DebugContext(ctx, "Remove of unknown expense id ignored", "id", id)
		return nil
	}

	removed := s.items[idx]
	prev := s.items
	// Full-slice expression forces append to reallocate, leaving prev intact.
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	if err := s.persistLocked(ctx); err != nil {
		s.items = prev
		return err
	}

	slog.InfoContext(ctx, "Expense removed", "id", id, "category", removed.Category)
	return nil
}

// Snapshot returns a copy of the collection ordered by creation
// timestamp descending. The sort is stable, so records sharing a
// timestamp keep their insertion order.
func (s *Store) Snapshot() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.copyLocked()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Stats computes lifetime and reference-month totals over the current
// collection. Pure read, no side effects.
func (s *Store) Stats(month time.Month, year int) core.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum core.Summary
	for _, e := range s.items {
		sum.Total.Cents += e.Amount.Cents
		sum.Count++
		if e.InMonth(month, year) {
			sum.MonthlyTotal.Cents += e.Amount.Cents
			sum.MonthlyCount++
		}
	}
	return sum
}

func (s *Store) Close() error {
	return s.kv.Close()
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := encodeExpenses(s.items)
	if err != nil {
		return &WriteError{Err: err}
	}
	if err := s.kv.Put(ctx, StorageKey, data); err != nil {
		slog.ErrorContext(ctx, "Failed to persist expenses", "error", err, "count", len(s.items))
		return &WriteError{Err: err}
	}
	return nil
}

func (s *Store) copyLocked() []core.Expense {
	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out
}
