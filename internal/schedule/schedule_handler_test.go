package schedule_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JoseGading/encorejeuneteam/internal/schedule"
	scheduleerrors "github.com/JoseGading/encorejeuneteam/internal/schedule/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	generateFn func(ctx context.Context, year, month int) (schedule.ScheduleResponse, error)
	getFn      func(ctx context.Context, year, month int) (schedule.ScheduleResponse, error)
	setLeaveFn func(ctx context.Context, year, month, day int, employeeName string) (schedule.ScheduleResponse, error)
}

func (f *fakeService) Generate(ctx context.Context, year, month int) (schedule.ScheduleResponse, error) {
	return f.generateFn(ctx, year, month)
}
func (f *fakeService) Get(ctx context.Context, year, month int) (schedule.ScheduleResponse, error) {
	return f.getFn(ctx, year, month)
}
func (f *fakeService) SetLeave(ctx context.Context, year, month, day int, employeeName string) (schedule.ScheduleResponse, error) {
	return f.setLeaveFn(ctx, year, month, day, employeeName)
}

func TestHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		generateFn: func(ctx context.Context, year, month int) (schedule.ScheduleResponse, error) {
			assert.Equal(t, 2026, year)
			assert.Equal(t, 2, month)
			return schedule.ScheduleResponse{Year: year, Month: month}, nil
		},
	}
	h := schedule.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/schedules/generate", strings.NewReader(`{"year":2026,"month":2}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"year":2026`)
}

func TestHandler_Generate_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := schedule.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/schedules/generate", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getFn: func(ctx context.Context, year, month int) (schedule.ScheduleResponse, error) {
			assert.Equal(t, 2026, year)
			assert.Equal(t, 3, month)
			return schedule.ScheduleResponse{Year: year, Month: month}, nil
		},
	}
	h := schedule.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/schedules/2026/3", nil)
	c.Params = gin.Params{{Key: "year", Value: "2026"}, {Key: "month", Value: "3"}}
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Get_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getFn: func(ctx context.Context, year, month int) (schedule.ScheduleResponse, error) {
			return schedule.ScheduleResponse{}, scheduleerrors.ErrScheduleNotFound
		},
	}
	h := schedule.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/schedules/2026/3", nil)
	c.Params = gin.Params{{Key: "year", Value: "2026"}, {Key: "month", Value: "3"}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "schedule not found")
}

func TestHandler_Get_BadParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := schedule.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/schedules/abc/3", nil)
	c.Params = gin.Params{{Key: "year", Value: "abc"}, {Key: "month", Value: "3"}}
	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetLeave(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		setLeaveFn: func(ctx context.Context, year, month, day int, employeeName string) (schedule.ScheduleResponse, error) {
			assert.Equal(t, 2026, year)
			assert.Equal(t, 2, month)
			assert.Equal(t, 14, day)
			assert.Equal(t, "Alice", employeeName)
			return schedule.ScheduleResponse{Year: year, Month: month}, nil
		},
	}
	h := schedule.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/schedules/2026/2/days/14/leave", strings.NewReader(`{"employee_name":"Alice"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{
		{Key: "year", Value: "2026"},
		{Key: "month", Value: "2"},
		{Key: "day", Value: "14"},
	}
	h.SetLeave(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetLeave_DayOutOfRange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		setLeaveFn: func(ctx context.Context, year, month, day int, employeeName string) (schedule.ScheduleResponse, error) {
			return schedule.ScheduleResponse{}, scheduleerrors.ErrDayOutOfRange
		},
	}
	h := schedule.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/schedules/2026/2/days/40/leave", strings.NewReader(`{"employee_name":""}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{
		{Key: "year", Value: "2026"},
		{Key: "month", Value: "2"},
		{Key: "day", Value: "40"},
	}
	h.SetLeave(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
