package middleware

// identity.go defines helper functions shared across middleware files. It
// provides the user-identity extraction used to build rate-limit bucket
// keys. When no user is authenticated the caller is treated as "anon" so
// unauthenticated browsing shares one bucket per IP.

import (
    "strconv"

    "github.com/labstack/echo/v4"
)

// currentUserID extracts a user identifier from the Echo context as set by
// JWTAuth. It returns "anon" when no user is authenticated.
func currentUserID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case uint64:
        if v > 0 {
            return strconv.FormatUint(v, 10)
        }
    case string:
        if v != "" {
            return v
        }
    }
    return "anon"
}
