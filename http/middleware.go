package http

import (
	"github.com/NishadiGunasinghe/cinema-tickets/purchase"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
)

const (
	headerKeyCorrelationID  = "Correlation-ID"
	headerKeyIdempotencyKey = "Idempotency-Key"
)

func correlationIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		correlationID := req.Header.Get(headerKeyCorrelationID)
		if correlationID == "" {
			correlationID = "gen_" + shortuuid.New()
		}
		c.Response().Header().Set(headerKeyCorrelationID, correlationID)

		ctx := log.ContextWithCorrelationID(req.Context(), correlationID)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

func loggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		correlationID := log.CorrelationIDFromContext(req.Context())
		ctx := log.ToContext(req.Context(), logrus.WithFields(logrus.Fields{
			"method":         req.Method,
			"path":           c.Path(),
			"correlation_id": correlationID,
		}))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

func idempotencyKeyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		key := req.Header.Get(headerKeyIdempotencyKey)
		if key == "" {
			key = uuid.NewString()
		}

		ctx := purchase.ContextWithIdempotencyKey(req.Context(), key)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
