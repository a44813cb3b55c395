package core

// Summary holds derived spending statistics for a snapshot: lifetime
// totals plus totals restricted to one reference month.
type Summary struct {
	Total        Money
	MonthlyTotal Money
	Count        int
	MonthlyCount int
}
