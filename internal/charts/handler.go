package charts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/caessy/tracker/internal/middleware"
	"github.com/caessy/tracker/internal/telemetry/tracing"
	"github.com/caessy/tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=charts_mocks_test.go -package=charts_test

type chartsRepo interface {
	MonthlyVolume(ctx context.Context, userID, year, month int) (*VolumeSeries, error)
	YearlyVolume(ctx context.Context, userID, year int) (*YearlySeries, error)
	Calendar(ctx context.Context, userID, year, month int) ([]CalendarDay, error)
}

// accessChecker guards cross-user reads: instructors may chart their
// trainees, everybody else only themselves.
type accessChecker interface {
	CanAccess(ctx context.Context, requesterID, targetUserID int) (bool, error)
}

type Handler struct {
	repo   chartsRepo
	access accessChecker
}

func NewHandler(repo chartsRepo, access accessChecker) *Handler {
	return &Handler{
		repo:   repo,
		access: access,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/monthly-volume", handler.HandleMonthlyVolume).Methods("GET", "OPTIONS").Name("monthly-volume")
	router.HandleFunc("/yearly-volume", handler.HandleYearlyVolume).Methods("GET", "OPTIONS").Name("yearly-volume")
	router.HandleFunc("/calendar", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("workout-calendar")
}

// targetUser resolves whose data is charted: the optional user_id
// query param, falling back to the requester. Writes the error
// response itself when access is denied.
func (handler *Handler) targetUser(ctx context.Context, w http.ResponseWriter, r *http.Request) (int, bool) {
	requesterID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}

	targetID := requesterID
	if userIDParam := r.URL.Query().Get("user_id"); userIDParam != "" {
		parsed, err := strconv.Atoi(userIDParam)
		if err != nil {
			http.Error(w, "error, user ID invalid", http.StatusBadRequest)
			return 0, false
		}
		targetID = parsed
	}

	allowed, err := handler.access.CanAccess(ctx, requesterID, targetID)
	if err != nil {
		log.Errorf("charts access check: %s", err)
		http.Error(w, "get chart failed", http.StatusInternalServerError)
		return 0, false
	}
	if !allowed {
		http.Error(w, "no can do", http.StatusForbidden)
		return 0, false
	}

	return targetID, true
}

func (handler *Handler) HandleMonthlyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.charts.monthly_volume")
	defer span.End()

	userID, ok := handler.targetUser(ctx, w, r)
	if !ok {
		return
	}

	year, month, ok := yearMonthParams(r)
	if !ok {
		http.Error(w, "error, invalid year or month", http.StatusBadRequest)
		return
	}

	series, err := handler.repo.MonthlyVolume(ctx, userID, year, month)
	if err != nil {
		log.Errorf("get monthly volume: %s", err)
		http.Error(w, "get chart failed", http.StatusInternalServerError)
		return
	}

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("marshal monthly volume: %s", err)
		http.Error(w, "get chart failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, seriesJson, http.StatusOK)
}

func (handler *Handler) HandleYearlyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.charts.yearly_volume")
	defer span.End()

	userID, ok := handler.targetUser(ctx, w, r)
	if !ok {
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		http.Error(w, "error, invalid year", http.StatusBadRequest)
		return
	}

	series, err := handler.repo.YearlyVolume(ctx, userID, year)
	if err != nil {
		log.Errorf("get yearly volume: %s", err)
		http.Error(w, "get chart failed", http.StatusInternalServerError)
		return
	}

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("marshal yearly volume: %s", err)
		http.Error(w, "get chart failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, seriesJson, http.StatusOK)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.charts.calendar")
	defer span.End()

	userID, ok := handler.targetUser(ctx, w, r)
	if !ok {
		return
	}

	year, month, ok := yearMonthParams(r)
	if !ok {
		http.Error(w, "error, invalid year or month", http.StatusBadRequest)
		return
	}

	days, err := handler.repo.Calendar(ctx, userID, year, month)
	if err != nil {
		log.Errorf("get workout calendar: %s", err)
		http.Error(w, "get chart failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(CalendarResponse{Days: days})
	if err != nil {
		log.Errorf("marshal workout calendar: %s", err)
		http.Error(w, "get chart failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func yearMonthParams(r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
