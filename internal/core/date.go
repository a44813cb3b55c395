package core

import (
	"log/slog"
	"time"
)

// entryDateLayouts are the accepted layouts for the user-facing date
// field, tried in order.
var entryDateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
}

// ParseEntryDate parses a user-facing MM/DD/YYYY date string.
func ParseEntryDate(s string) (time.Time, error) {
	var err error
	for _, layout := range entryDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// FormatEntryDate returns the date formatted for display ("Mar 15, 2024").
// Unparseable dates fall back to the raw stored string; the fallback is
// logged so malformed entries don't go unnoticed.
func FormatEntryDate(s string) string {
	t, err := ParseEntryDate(s)
	if err != nil {
		slog.Warn("Unparseable expense date, displaying raw value", "date", s)
		return s
	}
	return t.Format("Jan 2, 2006")
}
