package handler

import (
    "errors"
    "strconv"

    "github.com/labstack/echo/v4"
)

// errNoUser is returned by getUserID when the context carries no
// authenticated user, which means the JWT middleware did not run or
// rejected the request.
var errNoUser = errors.New("no authenticated user in context")

// getUserID extracts the authenticated user's id from the Echo context as
// stored by the JWTAuth middleware.
func getUserID(c echo.Context) (uint64, error) {
    switch t := c.Get("user_id").(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errNoUser
}

// getEmail extracts the authenticated user's email, or "" when absent.
func getEmail(c echo.Context) string {
    if s, ok := c.Get("email").(string); ok {
        return s
    }
    return ""
}
