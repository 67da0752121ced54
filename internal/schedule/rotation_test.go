package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func noLeaveWeek() []string {
	return []string{"", "", "", "", "", "", ""}
}

func TestAssignWeekRoles_SoloRotatesAcrossWeeks(t *testing.T) {
	roster := []string{"Alice", "Bob", "Carol"}
	stats := NewStats(roster)

	// Minggu 0: semua skor solo 0, tie-break jatuh ke Alice; pola 2P1M.
	roles := AssignWeekRoles(noLeaveWeek(), roster, 0, stats)
	assert.Equal(t, RoleMalam, roles["Alice"])
	assert.Equal(t, RolePagi, roles["Bob"])
	assert.Equal(t, RolePagi, roles["Carol"])
	assert.Equal(t, 1, stats.get("Alice").WeeksAsMalamSolo)
	assert.Equal(t, 0, stats.get("Bob").soloScore())
	assert.Equal(t, 0, stats.get("Carol").soloScore())

	// Minggu 1: kandidat tersisa Bob dan Carol, 1%2=1 memilih Carol; pola 1P2M.
	roles = AssignWeekRoles(noLeaveWeek(), roster, 1, stats)
	assert.Equal(t, RolePagi, roles["Carol"])
	assert.Equal(t, RoleMalam, roles["Alice"])
	assert.Equal(t, RoleMalam, roles["Bob"])
	assert.Equal(t, 1, stats.get("Carol").WeeksAsPagiSolo)

	// Minggu 2: hanya Bob yang belum pernah solo.
	roles = AssignWeekRoles(noLeaveWeek(), roster, 2, stats)
	assert.Equal(t, RoleMalam, roles["Bob"])
	assert.Equal(t, RolePagi, roles["Alice"])
	assert.Equal(t, RolePagi, roles["Carol"])

	// Minggu 3: semua kembali seri di skor 1, 3%3=0 memilih Alice lagi.
	roles = AssignWeekRoles(noLeaveWeek(), roster, 3, stats)
	assert.Equal(t, RolePagi, roles["Alice"])
	assert.Equal(t, RoleMalam, roles["Bob"])
	assert.Equal(t, RoleMalam, roles["Carol"])
}

func TestAssignWeekRoles_FourLeaveDaysExcludesFromWeek(t *testing.T) {
	roster := []string{"Alice", "Bob", "Carol"}
	stats := NewStats(roster)

	week := []string{"Alice", "Alice", "Alice", "Alice", "", "", ""}
	roles := AssignWeekRoles(week, roster, 0, stats)

	_, assigned := roles["Alice"]
	assert.False(t, assigned)
	assert.Equal(t, RoleDouble, roles["Bob"])
	assert.Equal(t, RolePagi, roles["Carol"])
	assert.Equal(t, 1, stats.get("Bob").WeeksAsDouble)
}

func TestAssignWeekRoles_ThreeLeaveDaysKeepsRotation(t *testing.T) {
	roster := []string{"Alice", "Bob", "Carol"}
	stats := NewStats(roster)

	week := []string{"Alice", "Alice", "Alice", "", "", "", ""}
	roles := AssignWeekRoles(week, roster, 0, stats)

	assert.Len(t, roles, 3)
	assert.Equal(t, RoleMalam, roles["Alice"])
}

func TestAssignWeekRoles_SharedPoolZeroStatsPicksFirstName(t *testing.T) {
	roster := []string{"Bob", "Alice"}
	stats := NewStats(roster)

	roles := AssignWeekRoles(noLeaveWeek(), roster, 0, stats)
	assert.Equal(t, RoleDouble, roles["Alice"])
	assert.Equal(t, RolePagi, roles["Bob"])
}

func TestAssignWeekRoles_SharedPoolPrefersFewestDoubleWeeks(t *testing.T) {
	roster := []string{"Dina", "Eko"}
	stats := NewStats(roster)
	stats.get("Dina").WeeksAsDouble = 1

	roles := AssignWeekRoles(noLeaveWeek(), roster, 0, stats)
	assert.Equal(t, RoleDouble, roles["Eko"])
	assert.Equal(t, RolePagi, roles["Dina"])
	assert.Equal(t, 1, stats.get("Eko").WeeksAsDouble)
	assert.Equal(t, 1, stats.get("Dina").WeeksAsPagiSolo)
}

func TestAssignWeekRoles_SharedPoolTieFallsBackToSoloScore(t *testing.T) {
	roster := []string{"Dina", "Eko"}
	stats := NewStats(roster)
	stats.get("Dina").WeeksAsPagiSolo = 2

	roles := AssignWeekRoles(noLeaveWeek(), roster, 0, stats)
	assert.Equal(t, RoleDouble, roles["Eko"])
	assert.Equal(t, RolePagi, roles["Dina"])
}

func TestAssignWeekRoles_SinglePool(t *testing.T) {
	roster := []string{"Alice"}
	stats := NewStats(roster)

	roles := AssignWeekRoles(noLeaveWeek(), roster, 0, stats)
	assert.Equal(t, RoleDouble, roles["Alice"])
	assert.Equal(t, 1, stats.get("Alice").WeeksAsDouble)
}

func TestAssignWeekRoles_EmptyPool(t *testing.T) {
	roster := []string{"Alice"}
	stats := NewStats(roster)

	week := []string{"Alice", "Alice", "Alice", "Alice", "Alice", "Alice", "Alice"}
	roles := AssignWeekRoles(week, roster, 0, stats)
	assert.Empty(t, roles)
}

func TestPickSolo_SingleCandidateIgnoresWeekIndex(t *testing.T) {
	roster := []string{"Alice", "Bob", "Carol"}
	stats := NewStats(roster)
	stats.get("Alice").WeeksAsMalamSolo = 1
	stats.get("Carol").WeeksAsPagiSolo = 1

	assert.Equal(t, "Bob", pickSolo(roster, 5, stats))
}
