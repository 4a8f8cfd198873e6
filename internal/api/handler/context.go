package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the verified identity injected by the Auth middleware
// and fast-fails before any service call. Both claims must be present — a
// token carrying neither is structurally valid but operationally unusable.
func ctxIdentity(c echo.Context) (userID, email string, err error) {
	userID, _ = c.Get("user_id").(string)
	email, _ = c.Get("email").(string)
	if userID == "" || email == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, email, nil
}
