package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/IdrisKulubi/huaweievent/internal/events"
	"github.com/IdrisKulubi/huaweievent/internal/messaging/kafka/consumer"
	"github.com/IdrisKulubi/huaweievent/internal/notification"
	"github.com/IdrisKulubi/huaweievent/internal/shared/connection"
)

// RunConsumer runs both kafka consumers: welcome credentials delivery for
// newly registered attendees and live check-in counters for the dashboard.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer rdb.Close()

	eventDetails := notification.EventDetails{
		Name:  envOr("SUMMIT_NAME", "Huawei Career Summit"),
		Date:  envOr("SUMMIT_DATE", "2025-09-15"),
		Venue: envOr("SUMMIT_VENUE", "KICC, Nairobi"),
	}
	notifier := notification.NewLogNotifier(zap.L())

	registeredReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.AttendeeRegisteredTopic,
		GroupID:        "summit-welcome",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer registeredReader.Close()

	checkinReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.CheckInRecordedTopic,
		GroupID:        "summit-checkin-stats",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer checkinReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAttendeeRegistered(ctx, registeredReader, notifier, eventDetails, logger)
	go consumer.ConsumeCheckInRecorded(ctx, checkinReader, rdb, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
