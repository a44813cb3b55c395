package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// statsDTO renders a summary with both cent-precise and display values.
type statsDTO struct {
	Year                int     `json:"year"`
	Month               int     `json:"month"`
	Total               float64 `json:"total"`
	TotalDisplay        string  `json:"total_display"`
	MonthlyTotal        float64 `json:"monthly_total"`
	MonthlyTotalDisplay string  `json:"monthly_total_display"`
	Count               int     `json:"count"`
	MonthlyCount        int     `json:"monthly_count"`
}

// handleStats serves lifetime and reference-month aggregates. Defaults
// to the current month; summaries are cached until the next mutation.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	year, month := parseYearMonth(r)
	key := s.statsCacheKey(year, month)

	sum, cached := s.statsCache.Get(key)
	if !cached {
		sum = s.store.Stats(month, year)
		s.statsCache.Set(key, sum)
		slog.DebugContext(r.Context(), "Stats cached", "year", year, "month", int(month))
	}

	newResponse().body(statsDTO{
		Year:                year,
		Month:               int(month),
		Total:               sum.Total.Float(),
		TotalDisplay:        sum.Total.String(),
		MonthlyTotal:        sum.MonthlyTotal.Float(),
		MonthlyTotalDisplay: sum.MonthlyTotal.String(),
		Count:               sum.Count,
		MonthlyCount:        sum.MonthlyCount,
	}).write(w)
}

// parseYearMonth extracts year and month from query parameters, using
// the current date for anything missing or out of range.
func parseYearMonth(r *http.Request) (int, time.Month) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = time.Month(m)
		}
	}

	return year, month
}
