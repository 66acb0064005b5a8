package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kmenon/travel-booking/internal/model"
)

// PlaceRepo resolves weak polymorphic references. A (category, id) pair has
// no foreign key behind it: the id addresses one of four disjoint tables
// depending on the category, and establishments serve double duty (Room rows
// live under type Hotel, Food rows under Restaurant/Cafe/Bar). This single
// dispatch point keeps bookings, reviews and the places listing agreeing on
// what an id means.
//
// All queries here are read-only; the catalog is never mutated.
type PlaceRepo struct{ DB *sql.DB }

func NewPlaceRepo(db *sql.DB) *PlaceRepo { return &PlaceRepo{DB: db} }

// foodEstablishmentTypes appears inline in several queries below. Rooms are
// disambiguated from food via the establishment type discriminator.
const foodEstablishmentTypes = "('Restaurant','Cafe','Bar')"

// ResolveLabel produces the display name of the entity a (category, id)
// pair addresses, or ErrNotFound when the pair misses. The transport label
// is assembled in Go rather than SQL so the format lives in exactly one
// place (see transportLabel).
func (r *PlaceRepo) ResolveLabel(ctx context.Context, cat model.Category, id uint64) (string, error) {
	switch cat {
	case model.CategoryAttraction:
		var name string
		err := r.DB.QueryRowContext(ctx,
			"SELECT name FROM attractions WHERE id=?", id).Scan(&name)
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return name, err
	case model.CategoryRoom:
		var name string
		err := r.DB.QueryRowContext(ctx,
			"SELECT name FROM establishments WHERE id=? AND type='Hotel'", id).Scan(&name)
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return name, err
	case model.CategoryFood:
		var name string
		err := r.DB.QueryRowContext(ctx,
			"SELECT name FROM establishments WHERE id=? AND type IN "+foodEstablishmentTypes, id).Scan(&name)
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return name, err
	case model.CategoryTransport:
		var mode, origin, dest string
		err := r.DB.QueryRowContext(ctx, `
			SELECT t.mode, fc.name, dc.name
			FROM transport t
			JOIN cities fc ON fc.id = t.from_city_id
			JOIN cities dc ON dc.id = t.destination_city_id
			WHERE t.id = ?`, id).Scan(&mode, &origin, &dest)
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		if err != nil {
			return "", err
		}
		return transportLabel(mode, origin, dest), nil
	}
	return "", model.ErrInvalidCategory
}

// Exists reports whether a (category, id) pair addresses a live catalog row.
// Booking and review creation call this before inserting so that weak
// references are valid at write time.
func (r *PlaceRepo) Exists(ctx context.Context, cat model.Category, id uint64) (bool, error) {
	var q string
	switch cat {
	case model.CategoryAttraction:
		q = "SELECT 1 FROM attractions WHERE id=? LIMIT 1"
	case model.CategoryRoom:
		q = "SELECT 1 FROM establishments WHERE id=? AND type='Hotel' LIMIT 1"
	case model.CategoryFood:
		q = "SELECT 1 FROM establishments WHERE id=? AND type IN " + foodEstablishmentTypes + " LIMIT 1"
	case model.CategoryTransport:
		q = "SELECT 1 FROM transport WHERE id=? LIMIT 1"
	default:
		return false, model.ErrInvalidCategory
	}
	var one int
	err := r.DB.QueryRowContext(ctx, q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListPlaces returns the {id, name} projection of every entity under a
// category, used to populate booking and review pickers.
func (r *PlaceRepo) ListPlaces(ctx context.Context, cat model.Category) ([]model.Place, error) {
	var q string
	switch cat {
	case model.CategoryAttraction:
		q = "SELECT id, name FROM attractions"
	case model.CategoryRoom:
		q = "SELECT id, name FROM establishments WHERE type='Hotel'"
	case model.CategoryFood:
		q = "SELECT id, name FROM establishments WHERE type IN " + foodEstablishmentTypes
	case model.CategoryTransport:
		rows, err := r.DB.QueryContext(ctx, `
			SELECT t.id, t.mode, fc.name, dc.name
			FROM transport t
			JOIN cities fc ON fc.id = t.from_city_id
			JOIN cities dc ON dc.id = t.destination_city_id`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		out := make([]model.Place, 0)
		for rows.Next() {
			var p model.Place
			var mode, origin, dest string
			if err := rows.Scan(&p.ID, &mode, &origin, &dest); err != nil {
				return nil, err
			}
			p.Name = transportLabel(mode, origin, dest)
			out = append(out, p)
		}
		return out, rows.Err()
	default:
		return nil, model.ErrInvalidCategory
	}

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Place, 0)
	for rows.Next() {
		var p model.Place
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// transportLabel formats a transport leg for display, e.g.
// "Flight: Delhi → Mumbai".
func transportLabel(mode, origin, dest string) string {
	return fmt.Sprintf("%s: %s → %s", mode, origin, dest)
}
