package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kmenon/travel-booking/internal/utils"
)

const testSecret = "middleware-test-secret"

func runProtected(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uint64, string) {
	t.Helper()
	e := echo.New()
	var gotUser uint64
	var gotEmail string
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		gotUser = UserID(c)
		gotEmail, _ = c.Get(CtxEmail).(string)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings/user", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, gotUser, gotEmail
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec, _, _ := runProtected(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}

	// A non-bearer scheme counts as missing, not invalid.
	rec, _, _ = runProtected(t, "Basic dXNlcjpwdw==")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, _, _ := runProtected(t, "Bearer not.a.token")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, want 403", rec.Code)
	}

	// Valid structure, wrong secret.
	raw, err := utils.NewSessionToken("some-other-secret", 7, "a@b.c", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	rec, _, _ = runProtected(t, "Bearer "+raw)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, want 403", rec.Code)
	}
}

func TestJWTAuthValidTokenBindsIdentity(t *testing.T) {
	raw, err := utils.NewSessionToken(testSecret, 42, "traveler@example.com", 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	rec, uid, email := runProtected(t, "Bearer "+raw)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if uid != 42 {
		t.Fatalf("user id: got %d, want 42", uid)
	}
	if email != "traveler@example.com" {
		t.Fatalf("email: got %q", email)
	}
}
