package schedule

import "sort"

// Role is an employee's shift duty for a whole week. Roles are weekly: the
// same role applies to every day of the week's window when the schedule is
// expanded day by day.
type Role string

const (
	RolePagi   Role = "pagi"
	RoleMalam  Role = "malam"
	RoleDouble Role = "double"
)

// Libur selama lebih dari setengah minggu (4+ hari) mengeluarkan orang
// tersebut dari rotasi minggu itu. Libur 3 hari atau kurang hanya
// menghilangkan orangnya dari grup pada hari libur itu saja.
const leaveExclusionThreshold = 4

// EmployeeStats accumulates fairness counters across a single generation run.
// Day counters move once per day, week counters once per week.
type EmployeeStats struct {
	TotalLeaveDays   int `json:"total_leave_days"`
	TotalPagiDays    int `json:"total_pagi_days"`
	TotalMalamDays   int `json:"total_malam_days"`
	WeeksAsPagiSolo  int `json:"weeks_as_pagi_solo"`
	WeeksAsMalamSolo int `json:"weeks_as_malam_solo"`
	WeeksAsDouble    int `json:"weeks_as_double"`
}

// Stats is rebuilt from zero on every generation run and folded through the
// weekly assignments in order. It is never persisted.
type Stats map[string]*EmployeeStats

func NewStats(roster []string) Stats {
	s := make(Stats, len(roster))
	for _, name := range roster {
		s[name] = &EmployeeStats{}
	}
	return s
}

func (s Stats) get(name string) *EmployeeStats {
	if st, ok := s[name]; ok {
		return st
	}
	st := &EmployeeStats{}
	s[name] = st
	return st
}

func (s *EmployeeStats) soloScore() int {
	return s.WeeksAsPagiSolo + s.WeeksAsMalamSolo
}

// poolKind tags the four pool-size regimes so each branch keeps its own
// invariants.
type poolKind int

const (
	poolEmpty    poolKind = iota // nobody available, nothing assignable
	poolSingle                   // one person covers everything
	poolShared                   // two people, one takes double duty
	poolRotation                 // three or more, weekly solo rotation
)

func poolKindOf(size int) poolKind {
	switch {
	case size >= 3:
		return poolRotation
	case size == 2:
		return poolShared
	case size == 1:
		return poolSingle
	default:
		return poolEmpty
	}
}

// AssignWeekRoles decides each available employee's weekly role for one 7-day
// window (shorter for a trailing partial week). weekLeave holds the leave
// person per day, "" meaning none. Stats are mutated in place; callers must
// thread the same Stats through consecutive weeks in order, because each
// week's tie-breaks depend on all prior weeks' counters.
func AssignWeekRoles(weekLeave []string, roster []string, weekIdx int, stats Stats) map[string]Role {
	leaveDays := make(map[string]int, len(roster))
	for _, name := range weekLeave {
		if name != "" {
			leaveDays[name]++
		}
	}

	pool := make([]string, 0, len(roster))
	for _, name := range roster {
		if leaveDays[name] < leaveExclusionThreshold {
			pool = append(pool, name)
		}
	}

	roles := make(map[string]Role, len(pool))

	switch poolKindOf(len(pool)) {
	case poolRotation:
		assignRotation(pool, weekIdx, stats, roles)
	case poolShared:
		assignShared(pool, stats, roles)
	case poolSingle:
		roles[pool[0]] = RoleDouble
		stats.get(pool[0]).WeeksAsDouble++
	case poolEmpty:
		// no roles this week
	}

	return roles
}

// assignRotation picks one solo person and alternates the solo direction by
// week parity: even weeks the solo covers malam (pola 2P1M), odd weeks the
// solo covers pagi (pola 1P2M). Everyone else shares the opposite shift.
func assignRotation(pool []string, weekIdx int, stats Stats, roles map[string]Role) {
	solo := pickSolo(pool, weekIdx, stats)

	soloRole, groupRole := RoleMalam, RolePagi
	if weekIdx%2 == 1 {
		soloRole, groupRole = RolePagi, RoleMalam
	}

	for _, name := range pool {
		if name == solo {
			roles[name] = soloRole
		} else {
			roles[name] = groupRole
		}
	}

	if soloRole == RoleMalam {
		stats.get(solo).WeeksAsMalamSolo++
	} else {
		stats.get(solo).WeeksAsPagiSolo++
	}
}

// pickSolo minimizes fairness drift: candidates are the employees with the
// fewest historical solo weeks; a tie rotates deterministically through the
// lexically sorted candidates by week index.
func pickSolo(pool []string, weekIdx int, stats Stats) string {
	minScore := stats.get(pool[0]).soloScore()
	for _, name := range pool[1:] {
		if score := stats.get(name).soloScore(); score < minScore {
			minScore = score
		}
	}

	candidates := make([]string, 0, len(pool))
	for _, name := range pool {
		if stats.get(name).soloScore() == minScore {
			candidates = append(candidates, name)
		}
	}

	if len(candidates) == 1 {
		return candidates[0]
	}

	sort.Strings(candidates)
	return candidates[weekIdx%len(candidates)]
}

// assignShared covers the understaffed two-person week: one person works both
// shifts, the other only pagi. Leaving malam solo-covered all week is
// accepted understaffing, not an error.
func assignShared(pool []string, stats Stats, roles map[string]Role) {
	ordered := append([]string(nil), pool...)
	sort.Strings(ordered)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := stats.get(ordered[i]), stats.get(ordered[j])
		if a.WeeksAsDouble != b.WeeksAsDouble {
			return a.WeeksAsDouble < b.WeeksAsDouble
		}
		return a.soloScore() < b.soloScore()
	})

	roles[ordered[0]] = RoleDouble
	roles[ordered[1]] = RolePagi

	stats.get(ordered[0]).WeeksAsDouble++
	stats.get(ordered[1]).WeeksAsPagiSolo++
}
