package model

// Catalog entities are read-only from this service's perspective: rows are
// seeded out of band and never mutated by any endpoint.

// City is a row in the `cities` table.
type City struct {
	ID      uint64 `json:"city_id"` // cities.id
	Name    string `json:"name"`    // cities.name
	Country string `json:"country"` // cities.country
}

// Room is a row in the `rooms` table joined with its establishment and city
// for display. Rooms only exist under establishments of type Hotel.
type Room struct {
	ID                  uint64  `json:"room_id"`
	EstablishmentID     uint64  `json:"establishment_id"`
	RoomType            string  `json:"room_type"`
	PricePerNight       float64 `json:"price_per_night"`
	Capacity            int     `json:"capacity"`
	Availability        bool    `json:"availability"`
	EstablishmentName   string  `json:"establishment_name"`
	EstablishmentRating float64 `json:"establishment_rating"`
	Address             string  `json:"address"`
	CityName            string  `json:"city_name"`
}

// FoodItem is a row in the `food_menu` table joined with its establishment
// and city. Food items only exist under Restaurant, Cafe or Bar establishments.
type FoodItem struct {
	ID                  uint64  `json:"food_id"`
	EstablishmentID     uint64  `json:"establishment_id"`
	ItemName            string  `json:"item_name"`
	Cuisine             string  `json:"cuisine"`
	Price               float64 `json:"price"`
	EstablishmentName   string  `json:"establishment_name"`
	EstablishmentType   string  `json:"establishment_type"`
	EstablishmentRating float64 `json:"establishment_rating"`
	Address             string  `json:"address"`
	CityName            string  `json:"city_name"`
}

// Attraction is a row in the `attractions` table joined with its city.
type Attraction struct {
	ID          uint64  `json:"attraction_id"`
	CityID      uint64  `json:"city_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	EntryFee    float64 `json:"entry_fee"`
	CityName    string  `json:"city_name"`
	Country     string  `json:"country"`
}

// TransportLeg is a row in the `transport` table joined with its endpoint
// cities. Mode is free text such as "Flight" or "Train".
type TransportLeg struct {
	ID              uint64  `json:"transport_id"`
	FromCityID      uint64  `json:"from_city_id"`
	DestCityID      uint64  `json:"destination_city_id"`
	Mode            string  `json:"mode"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	FromCityName    string  `json:"from_city_name"`
	FromCountry     string  `json:"from_country"`
	DestName        string  `json:"destination_name"`
	DestCountry     string  `json:"destination_country"`
}

// Place is the minimal {id, name} projection of any catalog entity under a
// given category, used to populate booking and review pickers.
type Place struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
