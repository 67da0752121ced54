package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status values mirror the attendance calendar the mobile client writes.
const (
	StatusBelum  = "belum" // belum diisi (unmarked)
	StatusHadir  = "hadir"
	StatusTelat  = "telat"
	StatusLembur = "lembur"
	StatusIzin   = "izin"
	StatusLibur  = "libur"
	StatusSakit  = "sakit"
	StatusAlpha  = "alpha"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusBelum, StatusHadir, StatusTelat, StatusLembur,
		StatusIzin, StatusLibur, StatusSakit, StatusAlpha:
		return true
	default:
		return false
	}
}

type DayRecord struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeName string         `gorm:"column:employee_name;type:varchar(100);not null;uniqueIndex:uq_attendance_day"`
	Year         int            `gorm:"column:year;type:int;not null;uniqueIndex:uq_attendance_day"`
	Month        int            `gorm:"column:month;type:int;not null;uniqueIndex:uq_attendance_day"`
	Day          int            `gorm:"column:day;type:int;not null;uniqueIndex:uq_attendance_day"`
	Status       string         `gorm:"column:status;type:varchar(20);not null;default:belum"`
	LateHours    float64        `gorm:"column:late_hours;type:numeric(4,1);not null;default:0"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (DayRecord) TableName() string {
	return "attendance_days"
}
