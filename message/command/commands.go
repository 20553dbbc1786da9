package command

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
)

type header struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func newHeader(idempotencyKey string) header {
	return header{
		ID:             watermill.NewUUID(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

type MakePayment struct {
	Header    header `json:"header"`
	AccountID int64  `json:"account_id"`
	Amount    int    `json:"amount"`
}

func NewMakePayment(idempotencyKey string, accountID int64, amount int) MakePayment {
	return MakePayment{
		Header:    newHeader(idempotencyKey),
		AccountID: accountID,
		Amount:    amount,
	}
}

type ReserveSeats struct {
	Header    header `json:"header"`
	AccountID int64  `json:"account_id"`
	SeatCount int    `json:"seat_count"`
}

func NewReserveSeats(idempotencyKey string, accountID int64, seatCount int) ReserveSeats {
	return ReserveSeats{
		Header:    newHeader(idempotencyKey),
		AccountID: accountID,
		SeatCount: seatCount,
	}
}
