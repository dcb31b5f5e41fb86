package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS headers sent by the search proxy endpoints.
const (
	ProxyAllowOrigin  = "*"
	ProxyAllowMethods = "POST, OPTIONS"
	ProxyAllowHeaders = "Content-Type"
)

// ProxyCORS sets the proxy's CORS headers on every response, whatever its status,
// and answers OPTIONS with 204 and no body.
func ProxyCORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, ProxyAllowOrigin)
			h.Set(echo.HeaderAccessControlAllowMethods, ProxyAllowMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, ProxyAllowHeaders)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
