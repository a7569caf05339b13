package charts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caessy/tracker/internal/charts"
	"github.com/caessy/tracker/internal/middleware"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerTestSetup struct {
	repo   *MockchartsRepo
	access *MockaccessChecker
	h      *charts.Handler
}

func newHandlerTestSetup(t *testing.T) *handlerTestSetup {
	ctrl := gomock.NewController(t)
	repoMock := NewMockchartsRepo(ctrl)
	accessMock := NewMockaccessChecker(ctrl)
	return &handlerTestSetup{
		repo:   repoMock,
		access: accessMock,
		h:      charts.NewHandler(repoMock, accessMock),
	}
}

func request(t *testing.T, userID int, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest("GET", url, nil)
	require.NoError(t, err)
	return req.WithContext(middleware.ContextWithUserID(req.Context(), userID))
}

func TestHandler_HandleMonthlyVolume(t *testing.T) {
	setup := newHandlerTestSetup(t)

	setup.access.EXPECT().
		CanAccess(gomock.Any(), 42, 42).
		Return(true, nil)
	setup.repo.EXPECT().
		MonthlyVolume(gomock.Any(), 42, 2026, 8).
		Return(&charts.VolumeSeries{
			Dates:   []string{"2026-08-18", "2026-08-20"},
			Volumes: []float64{4200, 4550.5},
		}, nil)

	rec := httptest.NewRecorder()
	setup.h.HandleMonthlyVolume(rec, request(t, 42, "/charts/monthly-volume?year=2026&month=8"))
	require.Equal(t, http.StatusOK, rec.Code)

	var series charts.VolumeSeries
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &series))
	require.Len(t, series.Dates, 2)
	assert.Equal(t, "2026-08-20", series.Dates[1])
	assert.Equal(t, 4550.5, series.Volumes[1])
}

func TestHandler_HandleMonthlyVolume_instructorAccess(t *testing.T) {
	setup := newHandlerTestSetup(t)

	// instructor 42 charts trainee 7
	setup.access.EXPECT().
		CanAccess(gomock.Any(), 42, 7).
		Return(true, nil)
	setup.repo.EXPECT().
		MonthlyVolume(gomock.Any(), 7, 2026, 8).
		Return(&charts.VolumeSeries{}, nil)

	rec := httptest.NewRecorder()
	setup.h.HandleMonthlyVolume(rec, request(t, 42, "/charts/monthly-volume?year=2026&month=8&user_id=7"))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_HandleMonthlyVolume_accessDenied(t *testing.T) {
	setup := newHandlerTestSetup(t)

	setup.access.EXPECT().
		CanAccess(gomock.Any(), 42, 7).
		Return(false, nil)

	rec := httptest.NewRecorder()
	setup.h.HandleMonthlyVolume(rec, request(t, 42, "/charts/monthly-volume?year=2026&month=8&user_id=7"))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_HandleMonthlyVolume_invalidParams(t *testing.T) {
	setup := newHandlerTestSetup(t)

	setup.access.EXPECT().
		CanAccess(gomock.Any(), 42, 42).
		Return(true, nil).
		Times(3)

	for _, query := range []string{
		"year=2026",
		"year=2026&month=13",
		"year=1999&month=8",
	} {
		rec := httptest.NewRecorder()
		setup.h.HandleMonthlyVolume(rec, request(t, 42, "/charts/monthly-volume?"+query))
		require.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestHandler_HandleYearlyVolume(t *testing.T) {
	setup := newHandlerTestSetup(t)

	series := &charts.YearlySeries{
		Months:  make([]string, 12),
		Volumes: make([]float64, 12),
	}
	for i := range series.Months {
		series.Months[i] = "01"
	}
	series.Volumes[7] = 18200

	setup.access.EXPECT().
		CanAccess(gomock.Any(), 42, 42).
		Return(true, nil)
	setup.repo.EXPECT().
		YearlyVolume(gomock.Any(), 42, 2026).
		Return(series, nil)

	rec := httptest.NewRecorder()
	setup.h.HandleYearlyVolume(rec, request(t, 42, "/charts/yearly-volume?year=2026"))
	require.Equal(t, http.StatusOK, rec.Code)

	var decoded charts.YearlySeries
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	require.Len(t, decoded.Volumes, 12)
	assert.Equal(t, float64(18200), decoded.Volumes[7])
}

func TestHandler_HandleCalendar(t *testing.T) {
	setup := newHandlerTestSetup(t)

	setup.access.EXPECT().
		CanAccess(gomock.Any(), 42, 42).
		Return(true, nil)
	setup.repo.EXPECT().
		Calendar(gomock.Any(), 42, 2026, 8).
		Return([]charts.CalendarDay{
			{Date: "2026-08-18", Volume: 4200, RoutineName: "Push Day"},
			{Date: "2026-08-20", Volume: 3100, RoutineName: "Custom Workout"},
		}, nil)

	rec := httptest.NewRecorder()
	setup.h.HandleCalendar(rec, request(t, 42, "/charts/calendar?year=2026&month=8"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp charts.CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "Push Day", resp.Days[0].RoutineName)
	assert.Equal(t, "Custom Workout", resp.Days[1].RoutineName)
}

func TestHandler_HandleCalendar_unauthorized(t *testing.T) {
	setup := newHandlerTestSetup(t)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/charts/calendar?year=2026&month=8", nil)
	require.NoError(t, err)

	setup.h.HandleCalendar(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_HandleCalendar_invalidUserIDParam(t *testing.T) {
	setup := newHandlerTestSetup(t)

	rec := httptest.NewRecorder()
	setup.h.HandleCalendar(rec, request(t, 42, "/charts/calendar?year=2026&month=8&user_id=bogus"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
