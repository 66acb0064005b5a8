package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kmenon/travel-booking/internal/middleware"
	"github.com/kmenon/travel-booking/internal/model"
	"github.com/kmenon/travel-booking/internal/queue"
	"github.com/kmenon/travel-booking/internal/repository"
	queue_publisher "github.com/kmenon/travel-booking/internal/service"
)

// BookingHandler serves booking creation and owner-scoped reads. All routes
// sit behind JWTAuth; the token subject is the only owner identity ever
// used, regardless of what a request body claims.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Places   *repository.PlaceRepo
}

func NewBookingHandler(b *repository.BookingRepo, p *repository.PlaceRepo) *BookingHandler {
	return &BookingHandler{Bookings: b, Places: p}
}

type createBookingReq struct {
	ServiceType string          `json:"service_type"`
	ServiceID   uint64          `json:"service_id"`
	TotalCost   float64         `json:"total_cost"`
	Details     json.RawMessage `json:"booking_details"`
}

// Create inserts a confirmed booking for the authenticated user. The weak
// (service_type, service_id) reference is validated against the catalog
// before insert: an unknown category is 400 and a missing row is 404. What
// is NOT checked is availability — nothing serializes two bookings against
// the same room, and both will succeed.
func (h *BookingHandler) Create(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied"})
	}

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cat, err := model.ParseCategory(req.ServiceType)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service_type"})
	}
	if len(req.Details) > 0 && !json.Valid(req.Details) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking_details"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ok, err := h.Places.Exists(ctx, cat, req.ServiceID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog lookup failed"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
	}

	id, err := h.Bookings.Create(ctx, userID, cat, req.ServiceID, req.TotalCost, req.Details)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	// Best-effort event; a broker outage must not fail the booking.
	go func() {
		ev := queue.BookingConfirmedEvent{
			BookingID:   id,
			UserID:      userID,
			ServiceType: string(cat),
			ServiceID:   req.ServiceID,
			TotalCost:   req.TotalCost,
			Status:      model.BookingStatusConfirmed,
			ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		}
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		if err := queue_publisher.PublishBookingConfirmed(pubCtx, ev); err != nil {
			log.Printf("booking %d: publish confirmed event failed: %v", id, err)
		}
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "booking confirmed successfully",
		"bookingId": id,
	})
}

// ListMine returns the authenticated user's bookings, newest first, with
// details deserialized.
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// GetByID returns one booking when the authenticated user owns it. Any
// other id, nonexistent or foreign, is a plain 404. The response carries
// service_name, the display label of whatever the weak reference points at,
// or null when the catalog row has since disappeared.
func (h *BookingHandler) GetByID(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByIDForUser(ctx, bookingID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
	}

	resp := struct {
		model.Booking
		ServiceName *string `json:"service_name"`
	}{Booking: b}
	if label, lerr := h.Places.ResolveLabel(ctx, b.ServiceType, b.ServiceID); lerr == nil {
		resp.ServiceName = &label
	}
	return c.JSON(http.StatusOK, resp)
}
