package middleware

import (
	"strconv"
	"time"

	"curatorMarket/pkg/logger"
	"curatorMarket/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderRequestID = "X-Request-ID"

// TraceID tags every request with an ID, reusing the caller's X-Request-ID
// when present, and stores it on the request context for the logger.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithTraceID(req.Context(), id)))
			c.Response().Header().Set(HeaderRequestID, id)

			return next(c)
		}
	}
}

// RequestMetrics records latency and count of every request by route.
func RequestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.HTTPRequestDuration.WithLabelValues(c.Request().Method, route, status).Observe(time.Since(start).Seconds())
			metrics.HTTPRequests.WithLabelValues(c.Request().Method, route, status).Inc()

			logger.Debug("request",
				"trace_id", logger.TraceIDFromContext(c.Request().Context()),
				"method", c.Request().Method,
				"route", route,
				"status", c.Response().Status,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)

			return nil
		}
	}
}
