package domain

import "time"

type Transaction struct {
	ID        int64
	UserID    int64
	Title     string
	Amount    float64
	Category  string
	CreatedAt time.Time
}

// Summary is the aggregate view connected clients recompute after a
// tx:summary:invalidate event.
type Summary struct {
	Balance float64
	Income  float64
	Expense float64
}
