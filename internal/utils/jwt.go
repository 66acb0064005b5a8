package utils // package utils provides helpers for session token creation and verification

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the assertion carried by a session token: the user id and the
// email it was issued for. Nothing else about the user is trusted from the
// token; handlers load fresh rows when they need more.
type Identity struct {
	UserID uint64
	Email  string
}

// ErrInvalidToken is returned when a token fails signature or structural
// validation, including tokens signed with an unexpected algorithm.
var ErrInvalidToken = errors.New("invalid token")

// NewSessionToken builds and signs an HS256 JWT binding a user id and email.
// ttlMin controls the exp claim: a positive value expires the token after
// that many minutes, while 0 omits exp entirely and the token never expires.
func NewSessionToken(secret string, userID uint64, email string, ttlMin int) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   time.Now().UTC().Unix(),
	}
	if ttlMin > 0 {
		claims["exp"] = time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute).Unix()
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies a raw token against the signing secret and
// returns the identity it asserts. Verification is side-effect-free; any
// structural or signature problem maps to ErrInvalidToken.
func ParseSessionToken(secret, raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC before touching claims.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	var id Identity
	// JWT numeric values decode as float64.
	if sub, ok := claims["sub"].(float64); ok {
		id.UserID = uint64(sub)
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if id.UserID == 0 {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}
