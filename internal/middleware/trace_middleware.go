package middleware

import (
	"context"

	"nutrimatch/business/recommender"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware attaches a trace ID to every request so service-level log
// lines can be correlated. An incoming X-Trace-ID is honored, otherwise a
// fresh UUID is generated.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get("X-Trace-ID")
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommender.TraceIDKey, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-ID", traceID)

			return next(c)
		}
	}
}
