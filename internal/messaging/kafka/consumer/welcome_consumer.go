package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/IdrisKulubi/huaweievent/internal/events"
	"github.com/IdrisKulubi/huaweievent/internal/notification"
)

// ConsumeAttendeeRegistered delivers the welcome email and SMS carrying the
// attendee's check-in credentials. Delivery failures leave the message
// uncommitted so it is retried on the next fetch.
func ConsumeAttendeeRegistered(
	ctx context.Context,
	reader *kafkago.Reader,
	notifier notification.Notifier,
	eventDetails notification.EventDetails,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendee_registered")
	log.Info("attendee registered consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendee registered consumer stopped")
				return
			}
			log.Error("fetch attendee registered message failed", zap.Error(err))
			continue
		}

		var event events.AttendeeRegisteredEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendee_registered event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notifier.SendWelcomeEmail(ctx, notification.WelcomeEmail{
			Email:        event.Email,
			Name:         event.Name,
			Pin:          event.Pin,
			TicketNumber: event.TicketNumber,
			Event:        eventDetails,
		}); err != nil {
			log.Error("send welcome email failed",
				zap.String("attendee_id", event.AttendeeID),
				zap.Error(err),
			)
			continue
		}

		if event.PhoneNumber != "" {
			if err := notifier.SendWelcomeSMS(ctx, notification.WelcomeSMS{
				PhoneNumber:  event.PhoneNumber,
				Name:         event.Name,
				Pin:          event.Pin,
				TicketNumber: event.TicketNumber,
			}); err != nil {
				log.Error("send welcome sms failed",
					zap.String("attendee_id", event.AttendeeID),
					zap.Error(err),
				)
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendee registered message failed", zap.Error(err))
			continue
		}

		log.Info("welcome notifications delivered",
			zap.String("attendee_id", event.AttendeeID),
		)
	}
}
