package clients

import (
	"context"
	"fmt"

	"github.com/NishadiGunasinghe/cinema-tickets/entity"
	"github.com/NishadiGunasinghe/cinema-tickets/message/command"
	"github.com/NishadiGunasinghe/cinema-tickets/purchase"
)

type SeatReservationClient struct {
	sender CommandSender
}

func NewSeatReservationClient(sender CommandSender) SeatReservationClient {
	return SeatReservationClient{
		sender: sender,
	}
}

func (c SeatReservationClient) ReserveSeat(ctx context.Context, accountID entity.AccountID, seatCount int) error {
	cmd := command.NewReserveSeats(purchase.IdempotencyKeyFromContext(ctx), int64(accountID), seatCount)

	if err := c.sender.Send(ctx, &cmd); err != nil {
		return fmt.Errorf("sending reserve seats command: %w", err)
	}

	return nil
}
