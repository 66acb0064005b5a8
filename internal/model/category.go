package model

import (
	"errors"
	"strings"
)

// Category discriminates which catalog table a weak reference addresses.
// Bookings carry it as service_type, reviews as category; in both cases the
// paired numeric id is meaningless without it.
type Category string

const (
	CategoryRoom       Category = "Room"
	CategoryFood       Category = "Food"
	CategoryAttraction Category = "Attraction"
	CategoryTransport  Category = "Transport"
)

// ErrInvalidCategory is returned when a string does not name one of the four
// service categories.
var ErrInvalidCategory = errors.New("invalid category")

// ParseCategory validates a client-supplied category string. Matching is
// case-insensitive; the canonical capitalized form is returned.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "room":
		return CategoryRoom, nil
	case "food":
		return CategoryFood, nil
	case "attraction":
		return CategoryAttraction, nil
	case "transport":
		return CategoryTransport, nil
	}
	return "", ErrInvalidCategory
}
