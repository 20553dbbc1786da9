package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/NishadiGunasinghe/cinema-tickets/message/command"
	"github.com/NishadiGunasinghe/cinema-tickets/service"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	log.Init(logLevel(getEnvOrDefault("LOG_LEVEL", "info")))
	logger := watermill.NewStdLogger(false, false)

	if err := run(logger); err != nil {
		logger.Error("failed to run", err, nil)
		os.Exit(1)
	}
}

func run(logger watermill.LoggerAdapter) error {
	rdb := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("failed to close redis connection", err, nil)
		}
	}()

	publisher, err := command.NewRedisPublisher(rdb, logger)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	svc, err := service.New(logger, publisher, getEnvOrDefault("HTTP_ADDR", ":8080"))
	if err != nil {
		return fmt.Errorf("creating service: %w", err)
	}

	return svc.Run(ctx)
}

func getEnvOrDefault(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func logLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
