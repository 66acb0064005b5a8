package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/kmenon/travel-booking/internal/repository"
)

func newPlaceHandler(t *testing.T) (*PlaceHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPlaceHandler(repository.NewPlaceRepo(db)), mock
}

func placesRequest(t *testing.T, h *PlaceHandler, category string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/places?category="+category, nil)
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("list: %v", err)
	}
	return rec
}

func TestListPlacesRejectsUnknownCategories(t *testing.T) {
	h, _ := newPlaceHandler(t)
	for _, bad := range []string{"", "InvalidTag", "Hotel", "Everything", "room%20service"} {
		rec := placesRequest(t, h, bad)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("category %q: got %d, want 400", bad, rec.Code)
		}
	}
}

func TestListPlacesRoom(t *testing.T) {
	h, mock := newPlaceHandler(t)
	mock.ExpectQuery("FROM establishments WHERE type='Hotel'").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Grand Palace").
			AddRow(4, "Seaside Inn"))

	rec := placesRequest(t, h, "Room")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Grand Palace") || !strings.Contains(rec.Body.String(), "Seaside Inn") {
		t.Fatalf("unexpected body: %s", rec.Body)
	}
}
