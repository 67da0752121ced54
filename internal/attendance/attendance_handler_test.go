package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JoseGading/encorejeuneteam/internal/attendance"
	attendanceerrors "github.com/JoseGading/encorejeuneteam/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	getStatusFn    func(ctx context.Context, employeeName string, year, month, day int) (attendance.DayStatusResponse, error)
	setStatusFn    func(ctx context.Context, req attendance.SetStatusRequest) (attendance.DayStatusResponse, error)
	getMonthFn     func(ctx context.Context, year, month int) ([]attendance.DayStatusResponse, error)
	leaveOfFn      func(ctx context.Context, employeeName string, year, month, day int) (bool, error)
	monthLeaveFn   func(ctx context.Context, year, month int) (map[int]string, error)
	setDayStatusFn func(ctx context.Context, employeeName string, year, month, day int, status string, lateHours float64) error
}

func (f *fakeService) GetStatus(ctx context.Context, employeeName string, year, month, day int) (attendance.DayStatusResponse, error) {
	return f.getStatusFn(ctx, employeeName, year, month, day)
}
func (f *fakeService) SetStatus(ctx context.Context, req attendance.SetStatusRequest) (attendance.DayStatusResponse, error) {
	return f.setStatusFn(ctx, req)
}
func (f *fakeService) GetMonth(ctx context.Context, year, month int) ([]attendance.DayStatusResponse, error) {
	return f.getMonthFn(ctx, year, month)
}
func (f *fakeService) LeaveOf(ctx context.Context, employeeName string, year, month, day int) (bool, error) {
	return f.leaveOfFn(ctx, employeeName, year, month, day)
}
func (f *fakeService) MonthLeave(ctx context.Context, year, month int) (map[int]string, error) {
	return f.monthLeaveFn(ctx, year, month)
}
func (f *fakeService) SetDayStatus(ctx context.Context, employeeName string, year, month, day int, status string, lateHours float64) error {
	return f.setDayStatusFn(ctx, employeeName, year, month, day, status, lateHours)
}

func TestHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		setStatusFn: func(ctx context.Context, req attendance.SetStatusRequest) (attendance.DayStatusResponse, error) {
			assert.Equal(t, "Alice", req.EmployeeName)
			assert.Equal(t, "telat", req.Status)
			assert.Equal(t, 1.5, req.LateHours)
			return attendance.DayStatusResponse{
				EmployeeName: req.EmployeeName,
				Year:         req.Year,
				Month:        req.Month,
				Day:          req.Day,
				Status:       req.Status,
				LateHours:    req.LateHours,
			}, nil
		},
	}
	h := attendance.NewHandler(svc)

	body := `{"employee_name":"Alice","year":2026,"month":2,"day":14,"status":"telat","late_hours":1.5}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/attendances/status", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.SetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"late_hours":1.5`)
}

func TestHandler_SetStatus_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := attendance.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/attendances/status", strings.NewReader(`{"employee_name":"Alice"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.SetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetStatus_InvalidStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		setStatusFn: func(ctx context.Context, req attendance.SetStatusRequest) (attendance.DayStatusResponse, error) {
			return attendance.DayStatusResponse{}, attendanceerrors.ErrInvalidStatus
		},
	}
	h := attendance.NewHandler(svc)

	body := `{"employee_name":"Alice","year":2026,"month":2,"day":14,"status":"cuti"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/attendances/status", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.SetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid attendance status")
}

func TestHandler_GetMonthPaginates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getMonthFn: func(ctx context.Context, year, month int) ([]attendance.DayStatusResponse, error) {
			return []attendance.DayStatusResponse{
				{EmployeeName: "Alice", Day: 1, Status: "hadir"},
				{EmployeeName: "Bob", Day: 1, Status: "libur"},
				{EmployeeName: "Carol", Day: 2, Status: "hadir"},
			}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendances/2026/2?page=1&page_size=2", nil)
	c.Params = gin.Params{{Key: "year", Value: "2026"}, {Key: "month", Value: "2"}}
	h.GetMonth(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"meta"`)
	assert.Contains(t, w.Body.String(), "Bob")
	assert.NotContains(t, w.Body.String(), "Carol")
}

func TestHandler_GetMonth_BadParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := attendance.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendances/xx/2", nil)
	c.Params = gin.Params{{Key: "year", Value: "xx"}, {Key: "month", Value: "2"}}
	h.GetMonth(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
