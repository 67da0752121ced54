package attendance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByEmployeeAndDate(ctx context.Context, employeeName string, year, month, day int) (*DayRecord, error)
	FindAllByMonth(ctx context.Context, year, month int) ([]DayRecord, error)
	FindLeaveByMonth(ctx context.Context, year, month int) ([]DayRecord, error)
	Upsert(ctx context.Context, rec *DayRecord) error
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

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeName string, year, month, day int) (*DayRecord, error) {
	var rec DayRecord
	err := r.db.WithContext(ctx).
		Where("employee_name = ?", employeeName).
		Where("year = ?", year).
		Where("month = ?", month).
		Where("day = ?", day).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindAllByMonth(ctx context.Context, year, month int) ([]DayRecord, error) {
	var rows []DayRecord
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Where("month = ?", month).
		Order("day ASC, employee_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindLeaveByMonth(ctx context.Context, year, month int) ([]DayRecord, error) {
	var rows []DayRecord
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Where("month = ?", month).
		Where("status = ?", StatusLibur).
		Order("day ASC, employee_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Upsert(ctx context.Context, rec *DayRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_name"}, {Name: "year"}, {Name: "month"}, {Name: "day"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"status", "late_hours", "updated_at"}),
		}).
		Create(rec).Error
}
