package domain

import (
	"fmt"
	"time"
)

// Rating is a user's rating for a store. At most one row exists per
// (user_id, store_id) pair; the upsert path relies on that constraint.
type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	StoreID   int64     `json:"store_id"`
	Value     int       `json:"rating_value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FormatAverage renders an average rating to exactly one decimal place.
// A nil input stays nil so "no ratings" remains distinguishable from an
// average of zero.
func FormatAverage(avg *float64) *string {
	if avg == nil {
		return nil
	}
	s := fmt.Sprintf("%.1f", *avg)
	return &s
}

// RaterEntry is one row of the owner dashboard raters list: who rated the
// store, with what value, and when the rating last changed.
type RaterEntry struct {
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
	Value   int       `json:"rating_value"`
	RatedAt time.Time `json:"rated_at"`
}
