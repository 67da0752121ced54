package schedule

import (
	"time"

	scheduleerrors "github.com/JoseGading/encorejeuneteam/internal/schedule/errors"
)

// DaySchedule is one calendar day of the month's shift plan.
type DaySchedule struct {
	Day     int       `json:"day"`
	Date    time.Time `json:"date"`
	DayName string    `json:"day_name"`
	Leave   string    `json:"leave"` // employee on libur that day, "" = none
	Pagi    []string  `json:"pagi"`
	Malam   []string  `json:"malam"`
	Note    string    `json:"note"`
}

// Schedule is the persisted unit: a whole month of day schedules.
type Schedule struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Days  []DaySchedule `json:"days"`
}

var dayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Generate builds the full month schedule. leave maps day-of-month to the
// employee on libur that day. The function is pure: identical inputs always
// produce identical output, so a regeneration with unchanged attendance is a
// no-op in content.
func Generate(year int, month time.Month, roster []string, leave map[int]string) (Schedule, Stats, error) {
	if month < time.January || month > time.December {
		return Schedule{}, nil, scheduleerrors.ErrInvalidMonth
	}
	if year < 2000 || year > 2100 {
		return Schedule{}, nil, scheduleerrors.ErrInvalidYear
	}
	if len(roster) == 0 {
		return Schedule{}, nil, scheduleerrors.ErrEmptyRoster
	}

	stats := NewStats(roster)
	total := daysIn(year, month)

	days := make([]DaySchedule, total)
	for i := range days {
		date := time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC)
		days[i] = DaySchedule{
			Day:     i + 1,
			Date:    date,
			DayName: dayNames[int(date.Weekday())],
			Leave:   leave[i+1],
		}
	}

	// One role map per 7-day window, stats folded forward sequentially.
	weekly := make([]map[string]Role, 0, (total+6)/7)
	for start := 0; start < total; start += 7 {
		end := start + 7
		if end > total {
			end = total
		}
		window := make([]string, end-start)
		for j := start; j < end; j++ {
			window[j-start] = days[j].Leave
		}
		weekly = append(weekly, AssignWeekRoles(window, roster, start/7, stats))
	}

	for i := range days {
		d := &days[i]
		roles := weekly[i/7]

		if d.Leave != "" {
			stats.get(d.Leave).TotalLeaveDays++
		}

		for _, name := range roster {
			role, ok := roles[name]
			if !ok {
				continue
			}
			// Libur hanya mengeluarkan orang dari grup hari itu selama masih
			// ada orang lain yang tersedia minggu itu.
			if name == d.Leave && len(roles) > 1 {
				continue
			}
			switch role {
			case RolePagi:
				d.Pagi = append(d.Pagi, name)
			case RoleMalam:
				d.Malam = append(d.Malam, name)
			case RoleDouble:
				d.Pagi = append(d.Pagi, name)
				d.Malam = append(d.Malam, name)
			}
		}

		for _, name := range d.Pagi {
			stats.get(name).TotalPagiDays++
		}
		for _, name := range d.Malam {
			stats.get(name).TotalMalamDays++
		}
	}

	return Schedule{Year: year, Month: month, Days: days}, stats, nil
}
