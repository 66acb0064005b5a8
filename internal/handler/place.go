package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kmenon/travel-booking/internal/model"
	"github.com/kmenon/travel-booking/internal/repository"
)

// PlaceHandler exposes the category-driven places listing used to populate
// booking and review pickers.
type PlaceHandler struct {
	Places *repository.PlaceRepo
}

func NewPlaceHandler(p *repository.PlaceRepo) *PlaceHandler { return &PlaceHandler{Places: p} }

// List returns {id, name} pairs for every entity under ?category=. The
// category is mandatory here, unlike the review listing where it is a
// filter: without one there is no table to address.
func (h *PlaceHandler) List(c echo.Context) error {
	cat, err := model.ParseCategory(c.QueryParam("category"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	places, err := h.Places.ListPlaces(ctx, cat)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list places failed"})
	}
	return c.JSON(http.StatusOK, places)
}
