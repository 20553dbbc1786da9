package purchase

import (
	"context"

	"github.com/NishadiGunasinghe/cinema-tickets/entity"
)

type PaymentService interface {
	MakePayment(ctx context.Context, accountID entity.AccountID, amount int) error
}

type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID entity.AccountID, seatCount int) error
}

type TicketService struct {
	payments PaymentService
	seats    SeatReservationService
}

func NewTicketService(p PaymentService, s SeatReservationService) *TicketService {
	return &TicketService{
		payments: p,
		seats:    s,
	}
}

type Result struct {
	TotalPrice    int
	SeatsReserved int
}

// PurchaseTickets takes payment for the requested tickets and reserves their seats.
// Nothing is sent to the payment or reservation services unless every check passes.
// Errors from those services are returned as they are.
// Both services see the same idempotency key, taken from ctx or generated once.
func (s *TicketService) PurchaseTickets(ctx context.Context, accountID entity.AccountID, requests ...entity.TicketRequest) error {
	_, err := s.Purchase(ctx, accountID, requests)
	return err
}

func (s *TicketService) Purchase(ctx context.Context, accountID entity.AccountID, requests []entity.TicketRequest) (Result, error) {
	if err := ValidateAccountID(accountID); err != nil {
		return Result{}, err
	}

	summary := Aggregate(requests)

	if err := ValidateSummary(summary); err != nil {
		return Result{}, err
	}

	result := Result{
		TotalPrice:    Price(summary),
		SeatsReserved: Seats(summary),
	}

	ctx = ContextWithIdempotencyKey(ctx, IdempotencyKeyFromContext(ctx))

	if err := s.payments.MakePayment(ctx, accountID, result.TotalPrice); err != nil {
		return Result{}, err
	}

	if err := s.seats.ReserveSeat(ctx, accountID, result.SeatsReserved); err != nil {
		return Result{}, err
	}

	return result, nil
}
