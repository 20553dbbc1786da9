package http

import (
	"net/http"

	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/labstack/echo/v4"
)

var ErrServerClosed = http.ErrServerClosed

func NewRouter(purchaser TicketPurchaser) *echo.Echo {
	server := commonHTTP.NewEcho()

	server.Use(correlationIDMiddleware)
	server.Use(loggerMiddleware)
	server.Use(idempotencyKeyMiddleware)

	server.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	h := handler{
		purchaser: purchaser,
	}

	server.POST("/ticket-purchases", h.PurchaseTickets)

	return server
}
