package middleware

// identity.go defines helper functions shared across middleware files. It
// provides a user identifier extraction function used when building rate
// limit keys. The identifier comes from the "user_id" context value set by
// JWTAuth, falling back to the claims of a parsed JWT stored under "user".
// When no token is present, "anon" is returned.

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// currentUserID extracts a user identifier from the Echo context. JWT "sub"
// claims decode as float64 from JSON, so both string and numeric forms are
// handled. Returns "anon" when no user is authenticated.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	}
	if tok, ok := c.Get("user").(*jwt.Token); ok {
		if cl, ok := tok.Claims.(jwt.MapClaims); ok {
			if s, ok := cl["sub"].(string); ok && s != "" {
				return s
			}
			if f, ok := cl["sub"].(float64); ok {
				return strconv.FormatUint(uint64(f), 10)
			}
		}
	}
	return "anon"
}
