package middleware // reusable HTTP middleware shared by the routers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kmenon/travel-booking/internal/utils"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

// JWTAuth returns an Echo middleware that validates a Bearer session token
// and injects the asserted user id and email into the request context. The
// secret must match the one used at issue time.
//
// Failure modes are distinct on purpose: a missing credential is 401
// "access denied" while a present-but-invalid one is 403 "invalid token".
// Handlers behind this middleware may trust c.Get(CtxUserID) as the only
// legitimate owner for writes and owner-scoped reads; user ids arriving in
// request bodies are never honored.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			id, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "invalid token"})
			}

			c.Set(CtxUserID, id.UserID)
			c.Set(CtxEmail, id.Email)
			return next(c)
		}
	}
}

// UserID pulls the authenticated user id out of the context. It returns 0
// when the route was not wrapped in JWTAuth, which callers must treat as an
// authorization bug rather than a guest session.
func UserID(c echo.Context) uint64 {
	if v, ok := c.Get(CtxUserID).(uint64); ok {
		return v
	}
	return 0
}
