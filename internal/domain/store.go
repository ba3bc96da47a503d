package domain

import "time"

type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   *int64    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreWithRatings is a store row enriched with the store-wide average and
// the requesting user's own rating. Averages are formatted strings with one
// decimal place; nil means no ratings exist, which must stay distinguishable
// from an average of zero.
type StoreWithRatings struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	OverallRating *string `json:"overall_rating"`
	UserRating    *int    `json:"user_rating"`
}

// StoreWithAverage is a store row with its overall average rating, used by
// the admin store listing.
type StoreWithAverage struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	OverallRating *string `json:"overall_rating"`
}
