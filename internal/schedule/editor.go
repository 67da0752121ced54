package schedule

import (
	"sort"

	scheduleerrors "github.com/JoseGading/encorejeuneteam/internal/schedule/errors"
)

// Attendance statuses the editor mirrors back into the calendar.
const (
	patchStatusLibur = "libur"
	patchStatusBelum = "belum"
)

// CalendarPatch is the attendance-calendar delta a manual leave edit implies.
// The editor only computes the delta; applying it is the caller's job.
type CalendarPatch struct {
	EmployeeName string
	Year         int
	Month        int
	Day          int
	Status       string
	LateHours    float64
}

// SetLeave applies a manual leave override to a single day without
// regenerating the month: a lone edit must not reshuffle every other week's
// fairness rotation. person == "" clears the day's leave. The input schedule
// is never mutated; on error it is returned untouched alongside nil patches.
func SetLeave(s Schedule, dayIdx int, person string, roster []string) (Schedule, []CalendarPatch, error) {
	if dayIdx < 0 || dayIdx >= len(s.Days) {
		return Schedule{}, nil, scheduleerrors.ErrDayOutOfRange
	}
	if person != "" && !rosterContains(roster, person) {
		return Schedule{}, nil, scheduleerrors.ErrUnknownEmployee
	}

	out := cloneSchedule(s)
	d := &out.Days[dayIdx]
	prev := d.Leave

	switch {
	case person == "" && prev != "":
		rebuildDayFallback(d, dayIdx, roster)
	case person != "" && person != prev:
		removeAndRebalance(d, person)
	}

	d.Leave = person

	var patches []CalendarPatch
	if person != "" {
		patches = append(patches, CalendarPatch{
			EmployeeName: person,
			Year:         out.Year,
			Month:        int(out.Month),
			Day:          d.Day,
			Status:       patchStatusLibur,
			LateHours:    0,
		})
	}
	if prev != "" && prev != person {
		patches = append(patches, CalendarPatch{
			EmployeeName: prev,
			Year:         out.Year,
			Month:        int(out.Month),
			Day:          d.Day,
			Status:       patchStatusBelum,
			LateHours:    0,
		})
	}

	return out, patches, nil
}

// rebuildDayFallback recomputes one day's groups after its leave is cleared.
// This is a best-effort local repair keyed only on week parity and the
// alphabetical roster order; it deliberately does not consult fairness stats,
// so the result can differ from what full generation would have produced.
func rebuildDayFallback(d *DaySchedule, dayIdx int, roster []string) {
	sorted := append([]string(nil), roster...)
	sort.Strings(sorted)
	if len(sorted) == 0 {
		d.Pagi = nil
		d.Malam = nil
		return
	}

	solo := sorted[:1:1]
	rest := append([]string(nil), sorted[1:]...)

	if (dayIdx/7)%2 == 0 {
		// pola 2P1M: solo malam
		d.Malam = solo
		d.Pagi = rest
	} else {
		// pola 1P2M: solo pagi
		d.Pagi = solo
		d.Malam = rest
	}
}

// removeAndRebalance takes the newly-on-leave person out of both groups. If
// that empties one group while the other still has members, one member moves
// across so no shift is left completely uncovered while people remain.
func removeAndRebalance(d *DaySchedule, person string) {
	wasPagi := rosterContains(d.Pagi, person)
	wasMalam := rosterContains(d.Malam, person)

	if wasPagi {
		d.Pagi = removeName(d.Pagi, person)
	}
	if wasMalam {
		d.Malam = removeName(d.Malam, person)
	}

	if wasMalam && len(d.Malam) == 0 && len(d.Pagi) > 0 {
		replacement := d.Pagi[0]
		d.Pagi = removeName(d.Pagi, replacement)
		d.Malam = append(d.Malam, replacement)
	} else if wasPagi && len(d.Pagi) == 0 && len(d.Malam) > 0 {
		replacement := d.Malam[0]
		d.Malam = removeName(d.Malam, replacement)
		d.Pagi = append(d.Pagi, replacement)
	}
}

func cloneSchedule(s Schedule) Schedule {
	out := Schedule{Year: s.Year, Month: s.Month, Days: make([]DaySchedule, len(s.Days))}
	for i, d := range s.Days {
		c := d
		c.Pagi = append([]string(nil), d.Pagi...)
		c.Malam = append([]string(nil), d.Malam...)
		out.Days[i] = c
	}
	return out
}

func rosterContains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
