package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"outlay/internal/core"
	"outlay/internal/store"
)

// expenseDTO is the shell's rendering of a record: raw values for
// clients plus display-formatted amount and date.
type expenseDTO struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	AmountDisplay string    `json:"amount_display"`
	Category      string    `json:"category"`
	Date          string    `json:"date"`
	DateDisplay   string    `json:"date_display"`
	Description   string    `json:"description"`
	Timestamp     time.Time `json:"timestamp"`
}

func toDTO(e core.Expense) expenseDTO {
	return expenseDTO{
		ID:            e.ID,
		Amount:        e.Amount.Float(),
		AmountDisplay: e.Amount.String(),
		Category:      e.Category,
		Date:          e.Date,
		DateDisplay:   core.FormatEntryDate(e.Date),
		Description:   e.Description,
		Timestamp:     e.Timestamp,
	}
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListExpenses(w, r)
	case http.MethodPost:
		s.handleCreateExpense(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	items := make([]expenseDTO, len(snap))
	for i, e := range snap {
		items[i] = toDTO(e)
	}
	newResponse().body(struct {
		Expenses []expenseDTO `json:"expenses"`
		Count    int          `json:"count"`
	}{Expenses: items, Count: len(items)}).write(w)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	parser := newRequestBodyParser(r)
	if err := parser.parse(); err != nil {
		slog.ErrorContext(r.Context(), "Parse request body error", "error", err, "method", r.Method, "path", r.URL.Path)
		errorResponse(http.StatusBadRequest, "bad_request", "Malformed request body").write(w)
		return
	}

	in := core.ExpenseInput{
		Amount:      parser.get("amount"),
		Category:    parser.get("category"),
		Date:        parser.get("date"),
		Description: parser.get("description"),
	}

	created, err := s.store.Append(r.Context(), in)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			validationErrorResponse(verr.Field, verr.Reason).write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Expense append error", "error", err, "category", in.Category)
		errorResponse(http.StatusInternalServerError, "storage_write_failed", "Could not save the expense").write(w)
		return
	}

	s.invalidateStats()
	newResponse().status(http.StatusCreated).body(toDTO(created)).write(w)
}

// handleExpenseByID serves DELETE /api/expenses/{id}. POST is accepted
// too, with the id in the body, for form-only clients.
func (s *Server) handleExpenseByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		methodNotAllowed(w, "DELETE, POST")
		return
	}

	id := sanitizeInput(strings.TrimPrefix(r.URL.Path, "/api/expenses/"))
	if id == "" || strings.Contains(id, "/") {
		parser := newRequestBodyParser(r)
		if err := parser.parse(); err == nil {
			id = parser.get("id")
		}
	}
	if id == "" {
		errorResponse(http.StatusBadRequest, "missing_id", "Expense id is required").write(w)
		return
	}

	if err := s.store.Remove(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Expense remove error", "error", err, "expense_id", id)
		errorResponse(http.StatusInternalServerError, "storage_write_failed", "Could not delete the expense").write(w)
		return
	}

	s.invalidateStats()
	newResponse().body(struct {
		Deleted string `json:"deleted"`
	}{Deleted: id}).write(w)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	newResponse().body(struct {
		Categories []string `json:"categories"`
	}{Categories: core.RecommendedCategories}).write(w)
}

// handleReload re-reads the collection from durable storage, the shell's
// refresh trigger. A corrupt payload is reported but leaves the server
// running over an empty collection.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	items, err := s.store.Load(r.Context())
	s.invalidateStats()
	if err != nil {
		var rerr *store.ReadError
		if errors.As(err, &rerr) {
			slog.WarnContext(r.Context(), "Reload found unreadable data, collection reset", "error", err)
			errorResponse(http.StatusOK, "storage_read_failed", "Stored expenses could not be read; starting empty").write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Reload error", "error", err)
		errorResponse(http.StatusInternalServerError, "reload_failed", "Could not reload expenses").write(w)
		return
	}

	newResponse().body(struct {
		Count int `json:"count"`
	}{Count: len(items)}).write(w)
}
