// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// BookingConfirmedEvent is published after a booking row is inserted. It
// carries enough for downstream consumers to log or notify without querying
// the primary database. ServiceType and ServiceID are the same weak
// reference stored on the booking.
type BookingConfirmedEvent struct {
	BookingID   uint64  `json:"booking_id"`
	UserID      uint64  `json:"user_id"`
	ServiceType string  `json:"service_type"`
	ServiceID   uint64  `json:"service_id"`
	TotalCost   float64 `json:"total_cost"`
	Status      string  `json:"status"`
	ConfirmedAt string  `json:"confirmed_at"`
}
