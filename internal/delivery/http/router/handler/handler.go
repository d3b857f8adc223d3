// Package handler contains the HTTP handlers for the application.
package handler

import "github.com/labstack/echo/v4"

// HeaderXUserID carries the id of the acting user. The transport in front of
// this API authenticates; this layer only forwards the identity for
// authorization checks.
const HeaderXUserID = "X-User-Id"

func actorID(c echo.Context) string {
	return c.Request().Header.Get(HeaderXUserID)
}
