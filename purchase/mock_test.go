package purchase_test

import (
	"context"
	"sync"

	"github.com/NishadiGunasinghe/cinema-tickets/entity"
)

type MakePaymentRequest struct {
	accountID entity.AccountID
	amount    int
}

type MockPaymentService struct {
	lock     sync.Mutex
	Payments []MakePaymentRequest
	Err      error
}

func (m *MockPaymentService) MakePayment(_ context.Context, accountID entity.AccountID, amount int) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.Payments = append(m.Payments, MakePaymentRequest{accountID: accountID, amount: amount})

	return m.Err
}

type ReserveSeatRequest struct {
	accountID entity.AccountID
	seatCount int
}

type MockSeatReservationService struct {
	lock         sync.Mutex
	Reservations []ReserveSeatRequest
	Err          error
}

func (m *MockSeatReservationService) ReserveSeat(_ context.Context, accountID entity.AccountID, seatCount int) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.Reservations = append(m.Reservations, ReserveSeatRequest{accountID: accountID, seatCount: seatCount})

	return m.Err
}
