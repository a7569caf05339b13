package bodystats

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/caessy/tracker/internal/middleware"
	"github.com/caessy/tracker/internal/telemetry/metrics"
	"github.com/caessy/tracker/internal/telemetry/tracing"
	"github.com/caessy/tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=bodystats_mocks_test.go -package=bodystats_test

type bodyStatsRepo interface {
	Add(ctx context.Context, stat BodyStat) (*BodyStat, error)
	Monthly(ctx context.Context, userID, year, month int) ([]BodyStat, error)
	YearlyAverages(ctx context.Context, userID, year int) ([]MonthAverage, error)
}

type Handler struct {
	repo    bodyStatsRepo
	metrics *metrics.Manager
}

func NewHandler(repo bodyStatsRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-body-stat")
	router.HandleFunc("/monthly", handler.HandleMonthly).Methods("GET", "OPTIONS").Name("monthly-body-stats")
	router.HandleFunc("/yearly", handler.HandleYearly).Methods("GET", "OPTIONS").Name("yearly-body-stats")
}

type MonthlyBodyStatsResponse struct {
	Days []BodyStat `json:"days"`
}

type YearlyBodyStatsResponse struct {
	Averages []MonthAverage `json:"averages"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodystats.add")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var stat BodyStat
	if err := json.NewDecoder(r.Body).Decode(&stat); err != nil {
		log.Errorf("add body stat, unmarshal json params: %s", err)
		http.Error(w, "add body stat failed", http.StatusBadRequest)
		return
	}

	if stat.Date.IsZero() {
		http.Error(w, "error, date is required", http.StatusBadRequest)
		return
	}

	stat.UserID = userID
	added, err := handler.repo.Add(ctx, stat)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "entry for this date already exists", http.StatusConflict)
			return
		}
		log.Errorf("add body stat: %s", err)
		http.Error(w, "add body stat failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterBodyStatsSaved.Inc()
	log.Debugf("body stat %d saved for user %d", added.ID, userID)

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added body stat: %s", err)
		http.Error(w, "add body stat failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodystats.monthly")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	year, ok := yearParam(r)
	if !ok {
		http.Error(w, "error, invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "error, invalid month", http.StatusBadRequest)
		return
	}

	stats, err := handler.repo.Monthly(ctx, userID, year, month)
	if err != nil {
		log.Errorf("get monthly body stats: %s", err)
		http.Error(w, "get body stats failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(MonthlyBodyStatsResponse{Days: stats})
	if err != nil {
		log.Errorf("marshal monthly body stats: %s", err)
		http.Error(w, "get body stats failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleYearly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodystats.yearly")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	year, ok := yearParam(r)
	if !ok {
		http.Error(w, "error, invalid year", http.StatusBadRequest)
		return
	}

	averages, err := handler.repo.YearlyAverages(ctx, userID, year)
	if err != nil {
		log.Errorf("get yearly body stats: %s", err)
		http.Error(w, "get body stats failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(YearlyBodyStatsResponse{Averages: averages})
	if err != nil {
		log.Errorf("marshal yearly body stats: %s", err)
		http.Error(w, "get body stats failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func yearParam(r *http.Request) (int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, false
	}
	return year, true
}
