// This file defines handlers for the public catalog API: cities, transport
// legs, hotel rooms, food menu items and attractions. These are plain
// filtered lookups with no authentication; responses sit behind the Redis
// cache middleware.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kmenon/travel-booking/internal/repository"
)

// CatalogHandler aggregates the read-only catalog endpoints.
type CatalogHandler struct {
	Catalog *repository.CatalogRepo
}

func NewCatalogHandler(cr *repository.CatalogRepo) *CatalogHandler {
	return &CatalogHandler{Catalog: cr}
}

// queryID parses an optional numeric query parameter, returning 0 when the
// parameter is absent or not a number (0 means "no filter" downstream).
func queryID(c echo.Context, name string) uint64 {
	v, _ := strconv.ParseUint(c.QueryParam(name), 10, 64)
	return v
}

// ListCities handles GET /cities.
func (h *CatalogHandler) ListCities(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cities, err := h.Catalog.ListCities(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, cities)
}

// GetCity handles GET /cities/:id.
func (h *CatalogHandler) GetCity(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	city, err := h.Catalog.GetCity(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "city not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, city)
}

// ListTransport handles GET /transport?fromCity=&toCity=.
func (h *CatalogHandler) ListTransport(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	legs, err := h.Catalog.ListTransport(ctx, queryID(c, "fromCity"), queryID(c, "toCity"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, legs)
}

// ListRooms handles GET /rooms?cityId=&establishmentId=.
func (h *CatalogHandler) ListRooms(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Catalog.ListRooms(ctx, queryID(c, "cityId"), queryID(c, "establishmentId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /rooms/:id.
func (h *CatalogHandler) GetRoom(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Catalog.GetRoom(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, room)
}

// ListFood handles GET /food?cityId=&establishmentId=.
func (h *CatalogHandler) ListFood(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Catalog.ListFood(ctx, queryID(c, "cityId"), queryID(c, "establishmentId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetFood handles GET /food/:id.
func (h *CatalogHandler) GetFood(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	item, err := h.Catalog.GetFood(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "food item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, item)
}

// ListAttractions handles GET /attractions?cityId=.
func (h *CatalogHandler) ListAttractions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	attractions, err := h.Catalog.ListAttractions(ctx, queryID(c, "cityId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, attractions)
}

// GetAttraction handles GET /attractions/:id.
func (h *CatalogHandler) GetAttraction(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	attraction, err := h.Catalog.GetAttraction(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "attraction not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, attraction)
}
