package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/NishadiGunasinghe/cinema-tickets/entity"
	"github.com/NishadiGunasinghe/cinema-tickets/purchase"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type TicketPurchaser interface {
	Purchase(ctx context.Context, accountID entity.AccountID, requests []entity.TicketRequest) (purchase.Result, error)
}

type handler struct {
	purchaser TicketPurchaser
}

type purchaseTicketsRequest struct {
	AccountID json.RawMessage `json:"account_id"`
	Tickets   []ticketRequest `json:"tickets"`
}

type ticketRequest struct {
	Type            entity.TicketCategory `json:"type"`
	NumberOfTickets uint                  `json:"number_of_tickets"`
}

type purchaseTicketsResponse struct {
	TotalPrice    int `json:"total_price"`
	SeatsReserved int `json:"seats_reserved"`
}

func (h handler) PurchaseTickets(c echo.Context) error {
	var request purchaseTicketsRequest
	if err := c.Bind(&request); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  "failed to parse request",
			Internal: fmt.Errorf("failed to bind request: %w", err),
		}
	}

	ctx := c.Request().Context()
	logger := log.FromContext(ctx)

	accountID, err := purchase.ParseAccountID(decodeAccountID(request.AccountID))
	if err != nil {
		logger.WithError(err).Info("Rejected ticket purchase")
		return purchaseError(c, err)
	}
	logger = logger.WithField("account_id", accountID)

	requests := make([]entity.TicketRequest, 0, len(request.Tickets))
	for _, t := range request.Tickets {
		// A single entry above the limit can never be bought, and must not reach int().
		if t.NumberOfTickets > purchase.MaxTicketsPerPurchase {
			logger.WithField("number_of_tickets", t.NumberOfTickets).Info("Rejected ticket purchase")
			return purchaseError(c, purchase.ErrTicketLimitExceeded)
		}

		r, err := entity.NewTicketRequest(t.Type, int(t.NumberOfTickets))
		if err != nil {
			return &echo.HTTPError{
				Code:     http.StatusBadRequest,
				Message:  "invalid ticket request",
				Internal: err,
			}
		}
		requests = append(requests, r)
	}

	result, err := h.purchaser.Purchase(ctx, accountID, requests)
	if purchase.IsRejected(err) {
		logger.WithError(err).Info("Rejected ticket purchase")
		return purchaseError(c, err)
	}
	if err != nil {
		logger.WithError(err).Error("Ticket purchase failed")
		return purchaseError(c, err)
	}

	logger.WithFields(logrus.Fields{
		"total_price":    result.TotalPrice,
		"seats_reserved": result.SeatsReserved,
	}).Info("Tickets purchased")

	return c.JSON(http.StatusOK, purchaseTicketsResponse{
		TotalPrice:    result.TotalPrice,
		SeatsReserved: result.SeatsReserved,
	})
}

// decodeAccountID keeps the JSON type of account_id so that strings and
// fractions can be told apart from integers. Missing or malformed values decode to nil.
func decodeAccountID(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil
	}
	return v
}
