package consumer

import (
	"context"
	"encoding/json"

	"github.com/JoseGading/encorejeuneteam/internal/events"
	"github.com/JoseGading/encorejeuneteam/internal/schedule"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeAttendanceChanges drops the cached month schedule whenever someone's
// attendance changes, so the next read reflects the calendar. Regeneration
// itself stays an explicit operator action.
func ConsumeAttendanceChanges(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance")
	log.Info("attendance change consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance change consumer stopped")
				return
			}
			log.Error("fetch attendance change message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance_status_changed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		cacheKey := schedule.CacheKey(event.Year, event.Month)
		if err := rdb.Del(ctx, cacheKey).Err(); err != nil {
			log.Error("invalidate schedule cache failed",
				zap.String("cache_key", cacheKey),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance change message failed", zap.Error(err))
			continue
		}

		log.Info("schedule cache invalidated from attendance change",
			zap.String("employee_name", event.EmployeeName),
			zap.Int("year", event.Year),
			zap.Int("month", event.Month),
			zap.Int("day", event.Day),
			zap.String("status", event.Status),
		)
	}
}
