package schedule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScheduleRecord stores the month's day list as one opaque JSON blob: the
// schedule is always written whole, never row-per-day, so a reader can never
// observe a partially-updated month.
type ScheduleRecord struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Year      int            `gorm:"column:year;type:int;not null;uniqueIndex:uq_schedule_month"`
	Month     int            `gorm:"column:month;type:int;not null;uniqueIndex:uq_schedule_month"`
	Days      datatypes.JSON `gorm:"column:days;type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (ScheduleRecord) TableName() string {
	return "shift_schedules"
}
