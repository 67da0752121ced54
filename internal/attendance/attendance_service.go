package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	attendanceerrors "github.com/JoseGading/encorejeuneteam/internal/attendance/errors"
	"github.com/JoseGading/encorejeuneteam/internal/events"
	"github.com/JoseGading/encorejeuneteam/internal/messaging/kafka"
	"github.com/JoseGading/encorejeuneteam/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetStatus(ctx context.Context, employeeName string, year, month, day int) (DayStatusResponse, error)
	SetStatus(ctx context.Context, req SetStatusRequest) (DayStatusResponse, error)
	GetMonth(ctx context.Context, year, month int) ([]DayStatusResponse, error)

	// LeaveOf reports whether the employee is marked libur on that exact day.
	LeaveOf(ctx context.Context, employeeName string, year, month, day int) (bool, error)

	// MonthLeave maps day-of-month to the employee on leave that day, at most
	// one per day. Ties resolve to the first record in (day, name) order.
	MonthLeave(ctx context.Context, year, month int) (map[int]string, error)

	// SetDayStatus is SetStatus with unpacked arguments, for callers that
	// compute patches instead of binding request bodies.
	SetDayStatus(ctx context.Context, employeeName string, year, month, day int, status string, lateHours float64) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func validateDate(year, month, day int) error {
	if year < 2000 || year > 2100 {
		return attendanceerrors.ErrInvalidDate
	}
	if month < 1 || month > 12 {
		return attendanceerrors.ErrInvalidDate
	}
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day < 1 || day > daysInMonth {
		return attendanceerrors.ErrInvalidDate
	}
	return nil
}

func (s *service) GetStatus(ctx context.Context, employeeName string, year, month, day int) (DayStatusResponse, error) {
	if strings.TrimSpace(employeeName) == "" {
		return DayStatusResponse{}, attendanceerrors.ErrEmptyEmployeeName
	}
	if err := validateDate(year, month, day); err != nil {
		return DayStatusResponse{}, err
	}

	rec, err := s.repo.FindByEmployeeAndDate(ctx, employeeName, year, month, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DayStatusResponse{}, attendanceerrors.ErrRecordNotFound
		}
		return DayStatusResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func (s *service) SetStatus(ctx context.Context, req SetStatusRequest) (DayStatusResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("set attendance status requested",
		zap.String("request_id", rid),
		zap.String("employee_name", req.EmployeeName),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("day", req.Day),
		zap.String("status", req.Status),
	)

	name := strings.TrimSpace(req.EmployeeName)
	if name == "" {
		return DayStatusResponse{}, attendanceerrors.ErrEmptyEmployeeName
	}
	if !IsValidStatus(req.Status) {
		s.logger.Warn("set attendance status rejected", zap.String("status", req.Status))
		return DayStatusResponse{}, attendanceerrors.ErrInvalidStatus
	}
	if err := validateDate(req.Year, req.Month, req.Day); err != nil {
		return DayStatusResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("set attendance status begin tx failed", zap.Error(err))
		return DayStatusResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec := &DayRecord{
		ID:           uuid.New(),
		EmployeeName: name,
		Year:         req.Year,
		Month:        req.Month,
		Day:          req.Day,
		Status:       req.Status,
		LateHours:    req.LateHours,
	}

	if err := qtx.Upsert(ctx, rec); err != nil {
		return DayStatusResponse{}, err
	}

	if s.outbox != nil {
		if err := s.enqueueStatusChanged(ctx, tx, rid, *rec); err != nil {
			s.logger.Error("enqueue attendance event failed", zap.Error(err))
			return DayStatusResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return DayStatusResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func (s *service) GetMonth(ctx context.Context, year, month int) ([]DayStatusResponse, error) {
	if err := validateDate(year, month, 1); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	res := make([]DayStatusResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) LeaveOf(ctx context.Context, employeeName string, year, month, day int) (bool, error) {
	rec, err := s.repo.FindByEmployeeAndDate(ctx, employeeName, year, month, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return rec.Status == StatusLibur, nil
}

func (s *service) MonthLeave(ctx context.Context, year, month int) (map[int]string, error) {
	rows, err := s.repo.FindLeaveByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	leave := make(map[int]string, len(rows))
	for _, r := range rows {
		if _, taken := leave[r.Day]; taken {
			continue
		}
		leave[r.Day] = r.EmployeeName
	}
	return leave, nil
}

func (s *service) SetDayStatus(ctx context.Context, employeeName string, year, month, day int, status string, lateHours float64) error {
	_, err := s.SetStatus(ctx, SetStatusRequest{
		EmployeeName: employeeName,
		Year:         year,
		Month:        month,
		Day:          day,
		Status:       status,
		LateHours:    lateHours,
	})
	return err
}

func (s *service) enqueueStatusChanged(ctx context.Context, tx *sql.Tx, requestID string, rec DayRecord) error {
	event := events.AttendanceStatusChangedEvent{
		EventType:    "attendance_status_changed",
		EmployeeName: rec.EmployeeName,
		Year:         rec.Year,
		Month:        rec.Month,
		Day:          rec.Day,
		Status:       rec.Status,
		OccurredAt:   time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "attendance_day",
		AggregateID:   fmt.Sprintf("%s:%d-%d-%d", rec.EmployeeName, rec.Year, rec.Month, rec.Day),
		EventType:     event.EventType,
		Topic:         events.AttendanceStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}

	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, outboxEvent)
}

func mapToResponse(r DayRecord) DayStatusResponse {
	return DayStatusResponse{
		EmployeeName: r.EmployeeName,
		Year:         r.Year,
		Month:        r.Month,
		Day:          r.Day,
		Status:       r.Status,
		LateHours:    r.LateHours,
	}
}
