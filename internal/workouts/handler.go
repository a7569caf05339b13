package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/caessy/tracker/internal/middleware"
	"github.com/caessy/tracker/internal/telemetry/metrics"
	"github.com/caessy/tracker/internal/telemetry/tracing"
	"github.com/caessy/tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (int, error)
	ListByDate(ctx context.Context, userID int, date time.Time) ([]Workout, error)
	Delete(ctx context.Context, userID, workoutID int) error
}

type Handler struct {
	repo    workoutsRepo
	metrics *metrics.Manager
}

func NewHandler(repo workoutsRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-workout")
	router.HandleFunc("/by-date", handler.HandleListByDate).Methods("GET", "OPTIONS").Name("workouts-by-date")
	router.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

type AddWorkoutResponse struct {
	Message   string `json:"message"`
	WorkoutID int    `json:"workout_id"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Errorf("add workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.Date.IsZero() || workout.Exercises == nil {
		http.Error(w, "error, date and exercises are required", http.StatusBadRequest)
		return
	}

	workout.UserID = userID
	workoutID, err := handler.repo.Add(ctx, workout)
	if err != nil {
		log.Errorf("add workout: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsSaved.Inc()
	log.Debugf("workout %d saved for user %d", workoutID, userID)

	respJson, err := json.Marshal(AddWorkoutResponse{
		Message:   "Workout saved",
		WorkoutID: workoutID,
	})
	if err != nil {
		log.Errorf("marshal add workout response: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleListByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list_by_date")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		http.Error(w, "error, missing date", http.StatusBadRequest)
		return
	}
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	workoutsList, err := handler.repo.ListByDate(ctx, userID, date)
	if err != nil {
		log.Errorf("get workouts by date: %s", err)
		http.Error(w, "get workouts failed", http.StatusInternalServerError)
		return
	}

	workoutsJson, err := json.Marshal(workoutsList)
	if err != nil {
		log.Errorf("marshal workouts: %s", err)
		http.Error(w, "get workouts failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutsJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	idParam := mux.Vars(r)["id"]
	workoutID, err := strconv.Atoi(idParam)
	if err != nil {
		http.Error(w, "error, workout ID invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, workoutID); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout: %s", err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout %d deleted", workoutID)
	w.WriteHeader(http.StatusNoContent)
}
