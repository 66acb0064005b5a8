package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kmenon/travel-booking/internal/middleware"
	"github.com/kmenon/travel-booking/internal/model"
	"github.com/kmenon/travel-booking/internal/repository"
)

// ReviewHandler serves review submission (authenticated) and the public
// listing enriched with user names and resolved place labels.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
	Places  *repository.PlaceRepo
}

func NewReviewHandler(r *repository.ReviewRepo, p *repository.PlaceRepo) *ReviewHandler {
	return &ReviewHandler{Reviews: r, Places: p}
}

type createReviewReq struct {
	Category string `json:"category"`
	PlaceID  uint64 `json:"place_id"`
	Rating   int    `json:"ratings"`
	Comment  string `json:"comments"`
}

// Create records a review for the authenticated user. The (category,
// place_id) pair is validated against the catalog before insert, same as
// bookings. There is no per-user uniqueness: reviewing a place twice just
// produces two rows.
func (h *ReviewHandler) Create(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied"})
	}

	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cat, err := model.ParseCategory(req.Category)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ratings must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ok, err := h.Places.Exists(ctx, cat, req.PlaceID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog lookup failed"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "place not found"})
	}

	if err := h.Reviews.Create(ctx, userID, cat, req.PlaceID, req.Rating, req.Comment); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create review failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "review submitted successfully"})
}

// List returns reviews newest first, optionally filtered by ?category=.
// No authentication: reviews are world-readable. A review whose place no
// longer resolves keeps its row with a null place_name.
func (h *ReviewHandler) List(c echo.Context) error {
	var cat *model.Category
	if s := c.QueryParam("category"); s != "" {
		parsed, err := model.ParseCategory(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category"})
		}
		cat = &parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Reviews.List(ctx, cat)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list reviews failed"})
	}
	return c.JSON(http.StatusOK, reviews)
}
