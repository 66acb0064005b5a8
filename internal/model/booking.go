package model

import (
	"encoding/json"
	"time"
)

// BookingStatusConfirmed is the only status a booking ever holds: there is
// no pending or failed intermediate state, and cancellation is out of scope.
const BookingStatusConfirmed = "Confirmed"

// Booking records a user's reservation against one catalog entity. The
// (ServiceType, ServiceID) pair is a weak reference: ServiceID points into
// the rooms, food_menu, attractions or transport table depending on
// ServiceType, and the four id spaces are unrelated.
//
// Details is the opaque booking payload exactly as the client submitted it;
// it is stored serialized and must round-trip byte for byte.
type Booking struct {
	ID          uint64          `json:"id"`              // bookings.id
	UserID      uint64          `json:"user_id"`         // bookings.user_id
	ServiceType Category        `json:"service_type"`    // bookings.service_type
	ServiceID   uint64          `json:"service_id"`      // bookings.service_id
	TotalCost   float64         `json:"total_cost"`      // bookings.total_cost
	Details     json.RawMessage `json:"booking_details"` // bookings.booking_details (JSON text)
	Status      string          `json:"status"`          // bookings.status
	CreatedAt   time.Time       `json:"created_at"`      // bookings.created_at
}
