package repository

import (
	"context"
	"database/sql"

	"github.com/kmenon/travel-booking/internal/model"
)

// CatalogRepo serves the read-only catalog: cities, transport legs, hotel
// rooms, food menu items and attractions. Queries are filtered lookups with
// no invariant beyond returning matching rows; nothing here ever writes.
type CatalogRepo struct{ DB *sql.DB }

func NewCatalogRepo(db *sql.DB) *CatalogRepo { return &CatalogRepo{DB: db} }

// ListCities returns every city.
func (r *CatalogRepo) ListCities(ctx context.Context) ([]model.City, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, country FROM cities")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.City, 0)
	for rows.Next() {
		var c model.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Country); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCity returns a single city or ErrNotFound.
func (r *CatalogRepo) GetCity(ctx context.Context, id uint64) (model.City, error) {
	var c model.City
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, country FROM cities WHERE id=?", id).Scan(&c.ID, &c.Name, &c.Country)
	if err == sql.ErrNoRows {
		return model.City{}, ErrNotFound
	}
	return c, err
}

// ListTransport returns transport legs joined with their endpoint cities,
// optionally filtered by origin and/or destination city id (0 = no filter).
func (r *CatalogRepo) ListTransport(ctx context.Context, fromCityID, toCityID uint64) ([]model.TransportLeg, error) {
	q := `
		SELECT t.id, t.from_city_id, t.destination_city_id, t.mode, t.price, t.duration_minutes,
		       fc.name, fc.country, dc.name, dc.country
		FROM transport t
		JOIN cities fc ON fc.id = t.from_city_id
		JOIN cities dc ON dc.id = t.destination_city_id
		WHERE 1=1`
	args := []interface{}{}
	if fromCityID != 0 {
		q += " AND t.from_city_id = ?"
		args = append(args, fromCityID)
	}
	if toCityID != 0 {
		q += " AND t.destination_city_id = ?"
		args = append(args, toCityID)
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.TransportLeg, 0)
	for rows.Next() {
		var t model.TransportLeg
		if err := rows.Scan(&t.ID, &t.FromCityID, &t.DestCityID, &t.Mode, &t.Price, &t.DurationMinutes,
			&t.FromCityName, &t.FromCountry, &t.DestName, &t.DestCountry); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListRooms returns available rooms in hotel establishments, optionally
// filtered by city and/or establishment (0 = no filter).
func (r *CatalogRepo) ListRooms(ctx context.Context, cityID, establishmentID uint64) ([]model.Room, error) {
	q := `
		SELECT r.id, r.establishment_id, r.room_type, r.price_per_night, r.capacity, r.availability,
		       e.name, e.rating, e.address, c.name
		FROM rooms r
		JOIN establishments e ON e.id = r.establishment_id
		JOIN cities c ON c.id = e.city_id
		WHERE r.availability = TRUE AND e.type = 'Hotel'`
	args := []interface{}{}
	if cityID != 0 {
		q += " AND e.city_id = ?"
		args = append(args, cityID)
	}
	if establishmentID != 0 {
		q += " AND r.establishment_id = ?"
		args = append(args, establishmentID)
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.EstablishmentID, &rm.RoomType, &rm.PricePerNight, &rm.Capacity, &rm.Availability,
			&rm.EstablishmentName, &rm.EstablishmentRating, &rm.Address, &rm.CityName); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// GetRoom returns a single room with establishment and city context, or
// ErrNotFound. Unlike ListRooms, no availability filter applies: a direct
// lookup of an unavailable room still resolves.
func (r *CatalogRepo) GetRoom(ctx context.Context, id uint64) (model.Room, error) {
	var rm model.Room
	err := r.DB.QueryRowContext(ctx, `
		SELECT r.id, r.establishment_id, r.room_type, r.price_per_night, r.capacity, r.availability,
		       e.name, e.rating, e.address, c.name
		FROM rooms r
		JOIN establishments e ON e.id = r.establishment_id
		JOIN cities c ON c.id = e.city_id
		WHERE r.id = ?`, id).Scan(&rm.ID, &rm.EstablishmentID, &rm.RoomType, &rm.PricePerNight, &rm.Capacity, &rm.Availability,
		&rm.EstablishmentName, &rm.EstablishmentRating, &rm.Address, &rm.CityName)
	if err == sql.ErrNoRows {
		return model.Room{}, ErrNotFound
	}
	return rm, err
}

// ListFood returns menu items in food-serving establishments, optionally
// filtered by city and/or establishment (0 = no filter).
func (r *CatalogRepo) ListFood(ctx context.Context, cityID, establishmentID uint64) ([]model.FoodItem, error) {
	q := `
		SELECT f.id, f.establishment_id, f.item_name, f.cuisine, f.price,
		       e.name, e.type, e.rating, e.address, c.name
		FROM food_menu f
		JOIN establishments e ON e.id = f.establishment_id
		JOIN cities c ON c.id = e.city_id
		WHERE e.type IN ('Restaurant','Cafe','Bar')`
	args := []interface{}{}
	if cityID != 0 {
		q += " AND e.city_id = ?"
		args = append(args, cityID)
	}
	if establishmentID != 0 {
		q += " AND f.establishment_id = ?"
		args = append(args, establishmentID)
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.FoodItem, 0)
	for rows.Next() {
		var f model.FoodItem
		if err := rows.Scan(&f.ID, &f.EstablishmentID, &f.ItemName, &f.Cuisine, &f.Price,
			&f.EstablishmentName, &f.EstablishmentType, &f.EstablishmentRating, &f.Address, &f.CityName); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// GetFood returns a single menu item with establishment and city context,
// or ErrNotFound.
func (r *CatalogRepo) GetFood(ctx context.Context, id uint64) (model.FoodItem, error) {
	var f model.FoodItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT f.id, f.establishment_id, f.item_name, f.cuisine, f.price,
		       e.name, e.type, e.rating, e.address, c.name
		FROM food_menu f
		JOIN establishments e ON e.id = f.establishment_id
		JOIN cities c ON c.id = e.city_id
		WHERE f.id = ?`, id).Scan(&f.ID, &f.EstablishmentID, &f.ItemName, &f.Cuisine, &f.Price,
		&f.EstablishmentName, &f.EstablishmentType, &f.EstablishmentRating, &f.Address, &f.CityName)
	if err == sql.ErrNoRows {
		return model.FoodItem{}, ErrNotFound
	}
	return f, err
}

// ListAttractions returns attractions joined with their city, optionally
// filtered by city id (0 = no filter).
func (r *CatalogRepo) ListAttractions(ctx context.Context, cityID uint64) ([]model.Attraction, error) {
	q := `
		SELECT a.id, a.city_id, a.name, a.description, a.entry_fee, c.name, c.country
		FROM attractions a
		JOIN cities c ON c.id = a.city_id`
	args := []interface{}{}
	if cityID != 0 {
		q += " WHERE a.city_id = ?"
		args = append(args, cityID)
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Attraction, 0)
	for rows.Next() {
		var a model.Attraction
		if err := rows.Scan(&a.ID, &a.CityID, &a.Name, &a.Description, &a.EntryFee, &a.CityName, &a.Country); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetAttraction returns a single attraction with city context, or ErrNotFound.
func (r *CatalogRepo) GetAttraction(ctx context.Context, id uint64) (model.Attraction, error) {
	var a model.Attraction
	err := r.DB.QueryRowContext(ctx, `
		SELECT a.id, a.city_id, a.name, a.description, a.entry_fee, c.name, c.country
		FROM attractions a
		JOIN cities c ON c.id = a.city_id
		WHERE a.id = ?`, id).Scan(&a.ID, &a.CityID, &a.Name, &a.Description, &a.EntryFee, &a.CityName, &a.Country)
	if err == sql.ErrNoRows {
		return model.Attraction{}, ErrNotFound
	}
	return a, err
}
