package clients

import (
	"context"
	"fmt"

	"github.com/NishadiGunasinghe/cinema-tickets/entity"
	"github.com/NishadiGunasinghe/cinema-tickets/message/command"
	"github.com/NishadiGunasinghe/cinema-tickets/purchase"
)

type PaymentsClient struct {
	sender CommandSender
}

func NewPaymentsClient(sender CommandSender) PaymentsClient {
	return PaymentsClient{
		sender: sender,
	}
}

func (c PaymentsClient) MakePayment(ctx context.Context, accountID entity.AccountID, amount int) error {
	cmd := command.NewMakePayment(purchase.IdempotencyKeyFromContext(ctx), int64(accountID), amount)

	if err := c.sender.Send(ctx, &cmd); err != nil {
		return fmt.Errorf("sending make payment command: %w", err)
	}

	return nil
}
