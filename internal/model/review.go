package model

import "time"

// Review is a user's rating of a catalog entity, keyed by the same weak
// (Category, PlaceID) reference discipline as bookings. A user may review
// the same place any number of times.
type Review struct {
	ID        uint64    // reviews.id
	UserID    uint64    // reviews.user_id
	Category  Category  // reviews.category
	PlaceID   uint64    // reviews.place_id
	Rating    int       // reviews.ratings
	Comment   string    // reviews.comments
	CreatedAt time.Time // reviews.created_at
}
