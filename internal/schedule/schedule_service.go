package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JoseGading/encorejeuneteam/internal/events"
	"github.com/JoseGading/encorejeuneteam/internal/messaging/kafka"
	scheduleerrors "github.com/JoseGading/encorejeuneteam/internal/schedule/errors"
	"github.com/JoseGading/encorejeuneteam/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// CacheKey is where the month's schedule response lives in redis. The
// attendance consumer deletes it when the calendar changes underneath us.
func CacheKey(year, month int) string {
	return fmt.Sprintf("schedules:%d:%02d", year, month)
}

// RosterSource hands out the ordered employee name list (owned by the
// employee module).
type RosterSource interface {
	GetRoster(ctx context.Context) ([]string, error)
}

// LeaveSource reads the month's libur facts from the attendance calendar.
type LeaveSource interface {
	MonthLeave(ctx context.Context, year, month int) (map[int]string, error)
}

// CalendarWriter applies the calendar patches a manual leave edit computes.
type CalendarWriter interface {
	SetDayStatus(ctx context.Context, employeeName string, year, month, day int, status string, lateHours float64) error
}

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, year, month int) (ScheduleResponse, error)
	Get(ctx context.Context, year, month int) (ScheduleResponse, error)
	SetLeave(ctx context.Context, year, month, day int, employeeName string) (ScheduleResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	roster   RosterSource
	leave    LeaveSource
	calendar CalendarWriter
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	roster RosterSource,
	leave LeaveSource,
	calendar CalendarWriter,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		roster:   roster,
		leave:    leave,
		calendar: calendar,
		outbox:   outboxRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Generate(ctx context.Context, year, month int) (ScheduleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate schedule requested",
		zap.String("request_id", rid),
		zap.Int("year", year),
		zap.Int("month", month),
	)

	roster, err := s.roster.GetRoster(ctx)
	if err != nil {
		s.logger.Error("generate schedule load roster failed", zap.Error(err))
		return ScheduleResponse{}, err
	}

	leave, err := s.leave.MonthLeave(ctx, year, month)
	if err != nil {
		s.logger.Error("generate schedule load leave facts failed", zap.Error(err))
		return ScheduleResponse{}, err
	}

	generated, stats, err := Generate(year, time.Month(month), roster, leave)
	if err != nil {
		s.logger.Warn("generate schedule rejected", zap.Error(err))
		return ScheduleResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate schedule begin tx failed", zap.Error(err))
		return ScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Save(ctx, generated); err != nil {
		return ScheduleResponse{}, err
	}

	if s.outbox != nil {
		if err := s.enqueueGenerated(ctx, tx, rid, generated); err != nil {
			s.logger.Error("enqueue schedule event failed", zap.Error(err))
			return ScheduleResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ScheduleResponse{}, err
	}

	s.invalidateCache(ctx, year, month)
	return mapToResponse(generated, stats), nil
}

func (s *service) Get(ctx context.Context, year, month int) (ScheduleResponse, error) {
	cacheKey := CacheKey(year, month)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp ScheduleResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		loaded, err := s.repo.Load(ctx, year, month)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, scheduleerrors.ErrScheduleNotFound
			}
			return nil, err
		}

		resp := mapToResponse(*loaded, nil)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return ScheduleResponse{}, err
	}

	return v.(ScheduleResponse), nil
}

func (s *service) SetLeave(ctx context.Context, year, month, day int, employeeName string) (ScheduleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("set leave requested",
		zap.String("request_id", rid),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("day", day),
		zap.String("employee_name", employeeName),
	)

	current, err := s.repo.Load(ctx, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleResponse{}, scheduleerrors.ErrScheduleNotFound
		}
		return ScheduleResponse{}, err
	}

	roster, err := s.roster.GetRoster(ctx)
	if err != nil {
		return ScheduleResponse{}, err
	}

	updated, patches, err := SetLeave(*current, day-1, employeeName, roster)
	if err != nil {
		s.logger.Warn("set leave rejected", zap.Error(err))
		return ScheduleResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Save(ctx, updated); err != nil {
		return ScheduleResponse{}, err
	}

	if s.outbox != nil {
		if err := s.enqueueGenerated(ctx, tx, rid, updated); err != nil {
			s.logger.Error("enqueue schedule event failed", zap.Error(err))
			return ScheduleResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ScheduleResponse{}, err
	}

	// Mirror the leave change into the attendance calendar. Each patch runs
	// through the attendance module so its own events still fire; last write
	// wins at that layer, same as the store the schedule came from.
	for _, p := range patches {
		if err := s.calendar.SetDayStatus(ctx, p.EmployeeName, p.Year, p.Month, p.Day, p.Status, p.LateHours); err != nil {
			s.logger.Error("apply calendar patch failed",
				zap.String("employee_name", p.EmployeeName),
				zap.Int("day", p.Day),
				zap.String("status", p.Status),
				zap.Error(err),
			)
			return ScheduleResponse{}, err
		}
	}

	s.invalidateCache(ctx, year, month)
	return mapToResponse(updated, nil), nil
}

func (s *service) enqueueGenerated(ctx context.Context, tx *sql.Tx, requestID string, generated Schedule) error {
	event := events.ScheduleGeneratedEvent{
		EventType:   "schedule_generated",
		Year:        generated.Year,
		Month:       int(generated.Month),
		GeneratedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "shift_schedule",
		AggregateID:   fmt.Sprintf("%d-%02d", generated.Year, int(generated.Month)),
		EventType:     event.EventType,
		Topic:         events.ScheduleGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}

	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, outboxEvent)
}

func (s *service) invalidateCache(ctx context.Context, year, month int) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CacheKey(year, month)).Err(); err != nil {
		s.logger.Error("invalidate schedule cache failed", zap.Error(err))
	}
}
