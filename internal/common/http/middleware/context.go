package middleware

import (
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog/ctxdata"

	"github.com/labstack/echo/v4"
)

// Context puts the caller's correlation id, or a new one, in the request
// context and echoes it back in the response header.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := ctxdata.SetContextFromHTTP(req.Context(), req)

			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(ctxdata.HeaderCorrelationId, ctxdata.GetCorrelationId(ctx))

			return next(c)
		}
	}
}
