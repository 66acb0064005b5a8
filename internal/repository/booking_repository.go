package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/kmenon/travel-booking/internal/model"
)

// BookingRepo provides access to the bookings table. Bookings are written
// once with status Confirmed and never updated or deleted; there is no
// availability check or inventory decrement, so two concurrent bookings
// against the same catalog item both succeed.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a confirmed booking owned by userID and returns its id.
// details is stored as JSON text exactly as received.
func (r *BookingRepo) Create(ctx context.Context, userID uint64, serviceType model.Category, serviceID uint64, totalCost float64, details json.RawMessage) (uint64, error) {
	if len(details) == 0 {
		details = json.RawMessage("{}")
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (user_id, service_type, service_id, total_cost, booking_details, status) VALUES (?,?,?,?,?,?)",
		userID, string(serviceType), serviceID, totalCost, string(details), model.BookingStatusConfirmed)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByUser returns all bookings owned by userID, newest first. A stored
// details payload that fails to parse is replaced with {} for that row so a
// single corrupt record cannot take down the whole listing.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, service_type, service_id, total_cost, booking_details, status, created_at
		FROM bookings
		WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByIDForUser returns a single booking only when it is owned by userID.
// A missing id and someone else's id both come back as ErrNotFound so the
// response never confirms that a foreign booking exists.
func (r *BookingRepo) GetByIDForUser(ctx context.Context, bookingID, userID uint64) (model.Booking, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, service_type, service_id, total_cost, booking_details, status, created_at
		FROM bookings
		WHERE id = ? AND user_id = ?`, bookingID, userID)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrNotFound
	}
	return b, err
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var b model.Booking
	var serviceType, details string
	err := row.Scan(&b.ID, &b.UserID, &serviceType, &b.ServiceID, &b.TotalCost, &details, &b.Status, &b.CreatedAt)
	if err != nil {
		return model.Booking{}, err
	}
	b.ServiceType = model.Category(serviceType)
	if json.Valid([]byte(details)) {
		b.Details = json.RawMessage(details)
	} else {
		b.Details = json.RawMessage("{}")
	}
	return b, nil
}
