package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kmenon/travel-booking/internal/model"
)

// ReviewRepo provides access to the reviews table. Reviews carry the same
// weak (category, place_id) reference as bookings; listing resolves each
// reference to a display label at read time instead of storing it.
type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// Create inserts a review owned by userID. There is deliberately no
// uniqueness constraint: a user may review the same place repeatedly.
func (r *ReviewRepo) Create(ctx context.Context, userID uint64, cat model.Category, placeID uint64, rating int, comment string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO reviews (user_id, category, place_id, ratings, comments) VALUES (?,?,?,?,?)",
		userID, string(cat), placeID, rating, comment)
	return err
}

// ReviewListing is a review row enriched for display with the submitting
// user's name and the resolved place label. PlaceName is nil when the weak
// reference no longer resolves; the review itself still appears so a
// resolution miss never makes existing reviews vanish.
type ReviewListing struct {
	ID        uint64         `json:"review_id"`
	Category  model.Category `json:"category"`
	PlaceID   uint64         `json:"place_id"`
	Rating    int            `json:"ratings"`
	Comment   string         `json:"comments"`
	CreatedAt time.Time      `json:"created_at"`
	UserName  string         `json:"user_name"`
	PlaceName *string        `json:"place_name"`
}

// List returns reviews newest first, optionally filtered by category (pass
// nil for all). The polymorphic place label is resolved in one query via
// per-category left joins; a CASE picks the branch matching each row's
// category, mirroring the resolver's dispatch table.
func (r *ReviewRepo) List(ctx context.Context, cat *model.Category) ([]ReviewListing, error) {
	q := `
		SELECT
			r.id,
			r.category,
			r.place_id,
			r.ratings,
			r.comments,
			r.created_at,
			u.name AS user_name,
			CASE
				WHEN r.category = 'Attraction' THEN a.name
				WHEN r.category IN ('Food', 'Room') THEN e.name
				WHEN r.category = 'Transport' THEN
					CONCAT(t.mode, ': ', fc.name, ' → ', dc.name)
			END AS place_name
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		LEFT JOIN attractions a ON a.id = r.place_id AND r.category = 'Attraction'
		LEFT JOIN establishments e ON e.id = r.place_id AND r.category IN ('Food', 'Room')
		LEFT JOIN transport t ON t.id = r.place_id AND r.category = 'Transport'
		LEFT JOIN cities fc ON fc.id = t.from_city_id
		LEFT JOIN cities dc ON dc.id = t.destination_city_id`

	args := []interface{}{}
	if cat != nil {
		q += " WHERE r.category = ?"
		args = append(args, string(*cat))
	}
	q += " ORDER BY r.created_at DESC"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ReviewListing, 0)
	for rows.Next() {
		var rv ReviewListing
		var category string
		var placeName sql.NullString
		if err := rows.Scan(&rv.ID, &category, &rv.PlaceID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UserName, &placeName); err != nil {
			return nil, err
		}
		rv.Category = model.Category(category)
		if placeName.Valid {
			rv.PlaceName = &placeName.String
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
