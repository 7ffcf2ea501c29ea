package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/IdrisKulubi/huaweievent/internal/events"
)

// ConsumeCheckInRecorded maintains live daily check-in counters in redis so
// the security dashboard does not hit the attendance table on every refresh.
// Counters expire after 48h; the durable truth stays in attendance_records.
func ConsumeCheckInRecorded(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.checkin_recorded")
	log.Info("check-in recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("check-in recorded consumer stopped")
				return
			}
			log.Error("fetch check-in recorded message failed", zap.Error(err))
			continue
		}

		var event events.CheckInRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode checkin_recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		day := event.OccurredAt.UTC().Format("2006-01-02")
		totalKey := fmt.Sprintf("checkins:%s:total", day)
		pipe := rdb.Pipeline()
		pipe.Incr(ctx, totalKey)
		pipe.Expire(ctx, totalKey, 48*time.Hour)
		if event.AlreadyCheckedIn {
			dupKey := fmt.Sprintf("checkins:%s:duplicates", day)
			pipe.Incr(ctx, dupKey)
			pipe.Expire(ctx, dupKey, 48*time.Hour)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			log.Error("update check-in counters failed",
				zap.String("attendance_record_id", event.AttendanceRecordID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit check-in recorded message failed", zap.Error(err))
			continue
		}
	}
}
