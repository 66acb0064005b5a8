package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/kmenon/travel-booking/internal/middleware"
	"github.com/kmenon/travel-booking/internal/repository"
)

func newBookingHandler(t *testing.T) (*BookingHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewBookingHandler(repository.NewBookingRepo(db), repository.NewPlaceRepo(db)), mock
}

// authedContext builds an echo context carrying the identity JWTAuth would
// have injected.
func authedContext(t *testing.T, method, target, body string, userID uint64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set(middleware.CtxUserID, userID)
	}
	return c, rec
}

func TestCreateBookingOwnerFromToken(t *testing.T) {
	h, mock := newBookingHandler(t)

	mock.ExpectQuery("SELECT 1 FROM establishments").
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	// The insert must carry the token subject (7), not the user_id smuggled
	// into the body.
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(uint64(7), "Room", uint64(42), 180.5, `{"nights":2}`, "Confirmed").
		WillReturnResult(sqlmock.NewResult(11, 1))

	body := `{"user_id":9999,"service_type":"Room","service_id":42,"total_cost":180.5,"booking_details":{"nights":2}}`
	c, rec := authedContext(t, http.MethodPost, "/bookings", body, 7)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body %s)", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"bookingId":11`) {
		t.Fatalf("missing bookingId: %s", rec.Body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateBookingInvalidServiceType(t *testing.T) {
	h, _ := newBookingHandler(t)
	body := `{"service_type":"Cruise","service_id":1,"total_cost":10}`
	c, rec := authedContext(t, http.MethodPost, "/bookings", body, 7)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestCreateBookingMissingCatalogRow(t *testing.T) {
	h, mock := newBookingHandler(t)
	mock.ExpectQuery("SELECT 1 FROM attractions").
		WithArgs(uint64(12345)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	body := `{"service_type":"Attraction","service_id":12345,"total_cost":10}`
	c, rec := authedContext(t, http.MethodPost, "/bookings", body, 7)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}

func TestListMineOnlyOwnRows(t *testing.T) {
	h, mock := newBookingHandler(t)
	cols := []string{"id", "user_id", "service_type", "service_id", "total_cost", "booking_details", "status", "created_at"}
	// The query itself is scoped by user_id; rows for anyone else can never
	// appear in the result.
	mock.ExpectQuery("FROM bookings").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, 7, "Room", 42, 180.5, `{"nights":2}`, "Confirmed", time.Now()))

	c, rec := authedContext(t, http.MethodGet, "/bookings/user", "", 7)
	if err := h.ListMine(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"user_id":9`) {
		t.Fatalf("foreign booking leaked: %s", rec.Body)
	}
}

func TestGetBookingOwnerWithServiceName(t *testing.T) {
	h, mock := newBookingHandler(t)
	cols := []string{"id", "user_id", "service_type", "service_id", "total_cost", "booking_details", "status", "created_at"}
	mock.ExpectQuery("FROM bookings").
		WithArgs(uint64(2), uint64(7)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, 7, "Attraction", 9, 25.0, `{"tickets":2}`, "Confirmed", time.Now()))
	mock.ExpectQuery("SELECT name FROM attractions").
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("City Museum"))

	c, rec := authedContext(t, http.MethodGet, "/bookings/2", "", 7)
	c.SetParamNames("id")
	c.SetParamValues("2")
	if err := h.GetByID(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"service_name":"City Museum"`) {
		t.Fatalf("missing service_name: %s", rec.Body)
	}
}

func TestGetBookingForeignOwner404(t *testing.T) {
	h, mock := newBookingHandler(t)
	cols := []string{"id", "user_id", "service_type", "service_id", "total_cost", "booking_details", "status", "created_at"}
	mock.ExpectQuery("FROM bookings").
		WithArgs(uint64(5), uint64(8)).
		WillReturnRows(sqlmock.NewRows(cols))

	c, rec := authedContext(t, http.MethodGet, "/bookings/5", "", 8)
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := h.GetByID(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	// Not 403: the response must not reveal that booking 5 exists at all.
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}
