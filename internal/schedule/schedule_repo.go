package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Load(ctx context.Context, year, month int) (*Schedule, error)
	Save(ctx context.Context, s Schedule) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Load(ctx context.Context, year, month int) (*Schedule, error) {
	var rec ScheduleRecord
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Where("month = ?", month).
		First(&rec).Error
	if err != nil {
		return nil, err
	}

	var days []DaySchedule
	if err := json.Unmarshal(rec.Days, &days); err != nil {
		return nil, err
	}

	s := fromRecord(rec, days)
	return &s, nil
}

func (r *repository) Save(ctx context.Context, s Schedule) error {
	rec, err := toRecord(s)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"days", "updated_at"}),
		}).
		Create(&rec).Error
}

func toRecord(s Schedule) (ScheduleRecord, error) {
	blob, err := json.Marshal(s.Days)
	if err != nil {
		return ScheduleRecord{}, err
	}
	return ScheduleRecord{
		ID:    uuid.New(),
		Year:  s.Year,
		Month: int(s.Month),
		Days:  blob,
	}, nil
}

func fromRecord(rec ScheduleRecord, days []DaySchedule) Schedule {
	return Schedule{
		Year:  rec.Year,
		Month: time.Month(rec.Month),
		Days:  days,
	}
}
