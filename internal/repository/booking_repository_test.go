package repository

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/kmenon/travel-booking/internal/model"
)

func newBookingMock(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewBookingRepo(db), mock
}

var bookingCols = []string{"id", "user_id", "service_type", "service_id", "total_cost", "booking_details", "status", "created_at"}

func TestCreateBookingStatusConfirmed(t *testing.T) {
	repo, mock := newBookingMock(t)
	details := json.RawMessage(`{"nights":2,"guests":{"adults":2,"children":1}}`)

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(uint64(7), "Room", uint64(42), 180.50, string(details), "Confirmed").
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.Create(context.Background(), 7, model.CategoryRoom, 42, 180.50, details)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 11 {
		t.Fatalf("id: got %d, want 11", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateBookingEmptyDetailsStoredAsObject(t *testing.T) {
	repo, mock := newBookingMock(t)
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(uint64(7), "Food", uint64(3), 25.0, "{}", "Confirmed").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if _, err := repo.Create(context.Background(), 7, model.CategoryFood, 3, 25.0, nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

// Two concurrent bookings for the same (service_type, service_id) both
// succeed with distinct ids. Nothing serializes them; this pins down the
// documented absence of an availability guard.
func TestConcurrentBookingsSameRoomBothSucceed(t *testing.T) {
	repo, mock := newBookingMock(t)
	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(2, 1))

	var wg sync.WaitGroup
	ids := make([]uint64, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = repo.Create(context.Background(), uint64(100+i), model.CategoryRoom, 42, 99.0, nil)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 2; i++ {
		if errs[i] != nil {
			t.Fatalf("booking %d failed: %v", i, errs[i])
		}
	}
	if ids[0] == ids[1] {
		t.Fatalf("both bookings share id %d", ids[0])
	}
}

func TestListByUserMalformedDetailsFallback(t *testing.T) {
	repo, mock := newBookingMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery("FROM bookings").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(2, 7, "Room", 42, 180.5, `{"nights":2}`, "Confirmed", now).
			AddRow(1, 7, "Transport", 3, 59.0, `{broken json`, "Confirmed", now.Add(-time.Hour)))

	bookings, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
	if string(bookings[0].Details) != `{"nights":2}` {
		t.Fatalf("intact details mangled: %s", bookings[0].Details)
	}
	// The corrupt row degrades to an empty object instead of killing the listing.
	if string(bookings[1].Details) != "{}" {
		t.Fatalf("malformed details: got %s, want {}", bookings[1].Details)
	}
}

func TestGetByIDForUserOwnerOnly(t *testing.T) {
	repo, mock := newBookingMock(t)

	// Owner fetch succeeds.
	mock.ExpectQuery("FROM bookings").
		WithArgs(uint64(5), uint64(7)).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(5, 7, "Attraction", 9, 30.0, `{}`, "Confirmed", time.Now()))
	// Same id fetched by another user matches no row.
	mock.ExpectQuery("FROM bookings").
		WithArgs(uint64(5), uint64(8)).
		WillReturnRows(sqlmock.NewRows(bookingCols))
	// A nonexistent id matches no row either.
	mock.ExpectQuery("FROM bookings").
		WithArgs(uint64(999), uint64(7)).
		WillReturnRows(sqlmock.NewRows(bookingCols))

	b, err := repo.GetByIDForUser(context.Background(), 5, 7)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if b.UserID != 7 || b.ServiceType != model.CategoryAttraction {
		t.Fatalf("unexpected booking: %+v", b)
	}

	// Foreign and missing ids are the same error: plain not-found.
	if _, err := repo.GetByIDForUser(context.Background(), 5, 8); err != ErrNotFound {
		t.Fatalf("foreign get: want ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByIDForUser(context.Background(), 999, 7); err != ErrNotFound {
		t.Fatalf("missing get: want ErrNotFound, got %v", err)
	}
}
