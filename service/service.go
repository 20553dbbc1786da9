package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NishadiGunasinghe/cinema-tickets/clients"
	"github.com/NishadiGunasinghe/cinema-tickets/http"
	"github.com/NishadiGunasinghe/cinema-tickets/message/command"
	"github.com/NishadiGunasinghe/cinema-tickets/purchase"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type Service struct {
	httpRouter *echo.Echo
	httpAddr   string
}

// New wires the purchase service to a command publisher. Payments and seat
// reservations are sent as commands to the services that own them.
func New(
	logger watermill.LoggerAdapter,
	publisher message.Publisher,
	httpAddr string,
) (*Service, error) {
	commandBus, err := command.NewBus(publisher, logger)
	if err != nil {
		return nil, fmt.Errorf("creating command bus: %w", err)
	}

	ticketService := purchase.NewTicketService(
		clients.NewPaymentsClient(commandBus),
		clients.NewSeatReservationClient(commandBus),
	)

	return &Service{
		httpRouter: http.NewRouter(ticketService),
		httpAddr:   httpAddr,
	}, nil
}

func (s Service) Run(ctx context.Context) error {
	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.Info("Starting HTTP server...")
		err := s.httpRouter.Start(s.httpAddr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logrus.Info("Shutting down HTTP server...")
		if err := s.httpRouter.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("waiting for shutdown: %w", err)
	}
	logrus.Info("Shutdown complete.")

	return nil
}
