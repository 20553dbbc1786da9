package clients_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/NishadiGunasinghe/cinema-tickets/clients"
	"github.com/NishadiGunasinghe/cinema-tickets/entity"
	"github.com/NishadiGunasinghe/cinema-tickets/message/command"
	"github.com/NishadiGunasinghe/cinema-tickets/purchase"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBus(t *testing.T) (*gochannel.GoChannel, clients.CommandSender) {
	t.Helper()

	logger := watermill.NopLogger{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, logger)
	t.Cleanup(func() {
		_ = pubSub.Close()
	})

	bus, err := command.NewBus(pubSub, logger)
	require.NoError(t, err)

	return pubSub, bus
}

func subscribe(t *testing.T, pubSub *gochannel.GoChannel, commandName string) <-chan *message.Message {
	t.Helper()

	messages, err := pubSub.Subscribe(context.Background(), command.Topic(commandName))
	require.NoError(t, err)

	return messages
}

func receive[T any](t *testing.T, messages <-chan *message.Message) T {
	t.Helper()

	var cmd T
	select {
	case msg := <-messages:
		msg.Ack()
		require.NoError(t, json.Unmarshal(msg.Payload, &cmd))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for command")
	}

	return cmd
}

func TestPaymentsClient_MakePayment(t *testing.T) {
	pubSub, bus := setupBus(t)
	messages := subscribe(t, pubSub, "MakePayment")
	ctx := purchase.ContextWithIdempotencyKey(context.Background(), "purchase-1")

	require.NoError(t, clients.NewPaymentsClient(bus).MakePayment(ctx, 7, 290))

	cmd := receive[command.MakePayment](t, messages)
	assert.Equal(t, int64(7), cmd.AccountID)
	assert.Equal(t, 290, cmd.Amount)
	assert.Equal(t, "purchase-1", cmd.Header.IdempotencyKey)
	assert.NotEmpty(t, cmd.Header.ID)
}

func TestSeatReservationClient_ReserveSeat(t *testing.T) {
	pubSub, bus := setupBus(t)
	messages := subscribe(t, pubSub, "ReserveSeats")

	require.NoError(t, clients.NewSeatReservationClient(bus).ReserveSeat(context.Background(), 7, 18))

	cmd := receive[command.ReserveSeats](t, messages)
	assert.Equal(t, int64(7), cmd.AccountID)
	assert.Equal(t, 18, cmd.SeatCount)
	assert.NotEmpty(t, cmd.Header.IdempotencyKey)
}

type failingSender struct {
	err error
}

func (s failingSender) Send(context.Context, any) error {
	return s.err
}

func TestPaymentsClient_SendError(t *testing.T) {
	sendErr := errors.New("redis unavailable")

	err := clients.NewPaymentsClient(failingSender{err: sendErr}).MakePayment(context.Background(), 1, 25)

	assert.ErrorIs(t, err, sendErr)
}

func TestTicketService_SendsCommands(t *testing.T) {
	pubSub, bus := setupBus(t)
	payments := subscribe(t, pubSub, "MakePayment")
	reservations := subscribe(t, pubSub, "ReserveSeats")

	svc := purchase.NewTicketService(clients.NewPaymentsClient(bus), clients.NewSeatReservationClient(bus))
	ctx := purchase.ContextWithIdempotencyKey(context.Background(), "purchase-2")

	var requests []entity.TicketRequest
	for c, n := range map[entity.TicketCategory]int{entity.Adult: 10, entity.Child: 8, entity.Infant: 4} {
		r, err := entity.NewTicketRequest(c, n)
		require.NoError(t, err)
		requests = append(requests, r)
	}

	err := svc.PurchaseTickets(ctx, 3, requests...)
	require.NoError(t, err)

	payment := receive[command.MakePayment](t, payments)
	assert.Equal(t, 370, payment.Amount)
	assert.Equal(t, "purchase-2", payment.Header.IdempotencyKey)

	reservation := receive[command.ReserveSeats](t, reservations)
	assert.Equal(t, 18, reservation.SeatCount)
	assert.Equal(t, "purchase-2", reservation.Header.IdempotencyKey)
}

func TestTicketService_SharesGeneratedIdempotencyKey(t *testing.T) {
	pubSub, bus := setupBus(t)
	payments := subscribe(t, pubSub, "MakePayment")
	reservations := subscribe(t, pubSub, "ReserveSeats")

	svc := purchase.NewTicketService(clients.NewPaymentsClient(bus), clients.NewSeatReservationClient(bus))

	adult, err := entity.NewTicketRequest(entity.Adult, 2)
	require.NoError(t, err)
	require.NoError(t, svc.PurchaseTickets(context.Background(), 4, adult))

	payment := receive[command.MakePayment](t, payments)
	reservation := receive[command.ReserveSeats](t, reservations)

	assert.NotEmpty(t, payment.Header.IdempotencyKey)
	assert.Equal(t, payment.Header.IdempotencyKey, reservation.Header.IdempotencyKey)
}
