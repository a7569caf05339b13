package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/caessy/tracker/internal/middleware"
	"github.com/caessy/tracker/internal/routines"
	"github.com/caessy/tracker/internal/telemetry/metrics"
	"github.com/caessy/tracker/internal/telemetry/tracing"
	"github.com/caessy/tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=session_test

type routineResolver interface {
	ResolveSeed(ctx context.Context, userID, routineID int) (*routines.Seed, error)
}

type Handler struct {
	manager  *Manager
	resolver routineResolver
	metrics  *metrics.Manager
}

func NewHandler(manager *Manager, resolver routineResolver, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		manager:  manager,
		resolver: resolver,
		metrics:  metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleGet).Methods("GET", "OPTIONS").Name("session")
	router.HandleFunc("", handler.HandleStop).Methods("DELETE", "OPTIONS").Name("stop-session")
	router.HandleFunc("/start/custom", handler.HandleStartCustom).Methods("POST", "OPTIONS").Name("start-custom-session")
	router.HandleFunc("/start/routine/{id}", handler.HandleStartRoutine).Methods("POST", "OPTIONS").Name("start-routine-session")
	router.HandleFunc("/pause", handler.HandlePause).Methods("POST", "OPTIONS").Name("pause-session")
	router.HandleFunc("/resume", handler.HandleResume).Methods("POST", "OPTIONS").Name("resume-session")
	router.HandleFunc("/exercises", handler.HandleAddExercises).Methods("POST", "OPTIONS").Name("add-session-exercises")
	router.HandleFunc("/exercises/{id}", handler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-session-exercise")
	router.HandleFunc("/exercises/{id}/sets", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-session-set")
	router.HandleFunc("/exercises/{id}/sets/{index}", handler.HandleUpdateSet).Methods("PATCH", "OPTIONS").Name("update-session-set")
	router.HandleFunc("/exercises/{id}/sets/{index}", handler.HandleRemoveSet).Methods("DELETE", "OPTIONS").Name("remove-session-set")
	router.HandleFunc("/exercises/{id}/sets/{index}/complete", handler.HandleCompleteSet).Methods("POST", "OPTIONS").Name("complete-session-set")
	router.HandleFunc("/rest/add", handler.HandleAddRestSeconds).Methods("POST", "OPTIONS").Name("add-rest-seconds")
	router.HandleFunc("/rest/stop", handler.HandleStopRest).Methods("POST", "OPTIONS").Name("stop-rest")
	router.HandleFunc("/save", handler.HandleSave).Methods("POST", "OPTIONS").Name("save-session")
}

func (handler *Handler) writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionActive):
		http.Error(w, "a session is already active", http.StatusConflict)
	case errors.Is(err, ErrNoActiveSession):
		http.Error(w, "no active session", http.StatusNotFound)
	case errors.Is(err, ErrExerciseNotFound), errors.Is(err, ErrSetNotFound):
		http.Error(w, "not found in session", http.StatusNotFound)
	case errors.Is(err, ErrSetNotReady):
		http.Error(w, "set needs valid reps and weight", http.StatusBadRequest)
	case errors.Is(err, ErrNotConfirmed):
		http.Error(w, "confirmation required to convert routine session", http.StatusConflict)
	case errors.Is(err, ErrNothingToSave):
		http.Error(w, "no completed sets to save", http.StatusBadRequest)
	default:
		log.Errorf("session operation: %s", err)
		http.Error(w, "session operation failed", http.StatusInternalServerError)
	}
}

func (handler *Handler) writeSnapshot(w http.ResponseWriter, session *Session, statusCode int) {
	snapshotJson, err := json.Marshal(session.Snapshot())
	if err != nil {
		log.Errorf("marshal session snapshot: %s", err)
		http.Error(w, "session operation failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, snapshotJson, statusCode)
}

func (handler *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, int, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, 0, false
	}
	session, err := handler.manager.Get(userID)
	if err != nil {
		handler.writeSessionError(w, err)
		return nil, userID, false
	}
	return session, userID, true
}

type StartCustomRequest struct {
	Exercises []Exercise `json:"exercises"`
}

func (handler *Handler) HandleStartCustom(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.start_custom")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req StartCustomRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("start custom session, unmarshal json params: %s", err)
			http.Error(w, "start session failed", http.StatusBadRequest)
			return
		}
	}

	session, err := handler.manager.StartCustom(userID, req.Exercises)
	if err != nil {
		handler.writeSessionError(w, err)
		return
	}
	handler.writeSnapshot(w, session, http.StatusCreated)
}

func (handler *Handler) HandleStartRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.start_routine")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	routineID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, routine ID invalid", http.StatusBadRequest)
		return
	}

	seed, err := handler.resolver.ResolveSeed(ctx, userID, routineID)
	if err != nil {
		switch {
		case errors.Is(err, routines.ErrRoutineNotFound):
			http.Error(w, "routine not found", http.StatusNotFound)
		case errors.Is(err, routines.ErrRoutineForbidden):
			http.Error(w, "no can do", http.StatusForbidden)
		default:
			log.Errorf("resolve routine %d: %s", routineID, err)
			http.Error(w, "start session failed", http.StatusInternalServerError)
		}
		return
	}

	session, err := handler.manager.StartRoutine(userID, seed)
	if err != nil {
		handler.writeSessionError(w, err)
		return
	}
	handler.writeSnapshot(w, session, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.get")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}
	handler.writeSnapshot(w, session, http.StatusOK)
}

func (handler *Handler) HandleStop(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.stop")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.manager.Stop(userID); err != nil {
		handler.writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandlePause(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.pause")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}
	session.PauseTimer()
	handler.writeSnapshot(w, session, http.StatusOK)
}

func (handler *Handler) HandleResume(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.resume")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}
	session.ResumeTimer()
	handler.writeSnapshot(w, session, http.StatusOK)
}

type AddExercisesRequest struct {
	Exercises []Exercise `json:"exercises"`
	Confirmed bool       `json:"confirmed"`
}

func (handler *Handler) HandleAddExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.add_exercises")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}

	var req AddExercisesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add session exercises, unmarshal json params: %s", err)
		http.Error(w, "add exercises failed", http.StatusBadRequest)
		return
	}

	if err := session.AddExercises(req.Exercises, req.Confirmed); err != nil {
		handler.writeSessionError(w, err)
		return
	}
	handler.writeSnapshot(w, session, http.StatusOK)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.remove_exercise")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}

	exerciseTypeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, exercise ID invalid", http.StatusBadRequest)
		return
	}
	confirmed := r.URL.Query().Get("confirmed") == "true"

	if err := session.RemoveExercise(exerciseTypeID, confirmed); err != nil {
		handler.writeSessionError(w, err)
		return
	}
	handler.writeSnapshot(w, session, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.add_set")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}

	exerciseTypeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, exercise ID invalid", http.StatusBadRequest)
		return
	}

	if err := session.AddSet(exerciseTypeID); err != nil {
		handler.writeSessionError(w, err)
		return
	}
	handler.writeSnapshot(w, session, http.StatusOK)
}

func (handler *Handler) setVars(w http.ResponseWriter, r *http.Request) (exerciseTypeID, setIndex int, ok bool) {
	vars := mux.Vars(r)
	exerciseTypeID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, exercise ID invalid", http.StatusBadRequest)
		return 0, 0, false
	}
	setIndex, err = strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "error, set index invalid", http.StatusBadRequest)
		return 0, 0, false
	}
	return exerciseTypeID, setIndex, true
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.update_set")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}
	exerciseTypeID, setIndex, ok := handler.setVars(w, r)
	if !ok {
		return
	}

	var params UpdateSetParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("update session set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	if err := session.UpdateSet(exerciseTypeID, setIndex, params); err != nil {
		handler.writeSessionError(w, err)
		return
	}
	handler.writeSnapshot(w, session, http.StatusOK)
}

func (handler *Handler) HandleRemoveSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.remove_set")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}
	exerciseTypeID, setIndex, ok := handler.setVars(w, r)
	if !ok {
		return
	}

	if err := session.RemoveSet(exerciseTypeID, setIndex); err != nil {
		handler.writeSessionError(w, err)
		return
	}
	handler.writeSnapshot(w, session, http.StatusOK)
}

func (handler *Handler) HandleCompleteSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.complete_set")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}
	exerciseTypeID, setIndex, ok := handler.setVars(w, r)
	if !ok {
		return
	}

	restStarted, err := session.CompleteSet(exerciseTypeID, setIndex)
	if err != nil {
		handler.writeSessionError(w, err)
		return
	}

	handler.metrics.CounterSetsCompleted.Inc()
	if restStarted {
		handler.metrics.CounterRestTimersStarted.Inc()
	}
	handler.writeSnapshot(w, session, http.StatusOK)
}

type AddRestSecondsRequest struct {
	Delta int `json:"delta"`
}

func (handler *Handler) HandleAddRestSeconds(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.add_rest_seconds")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}

	var req AddRestSecondsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add rest seconds, unmarshal json params: %s", err)
		http.Error(w, "add rest seconds failed", http.StatusBadRequest)
		return
	}

	session.AddRestSeconds(req.Delta)
	handler.writeSnapshot(w, session, http.StatusOK)
}

func (handler *Handler) HandleStopRest(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.stop_rest")
	defer span.End()

	session, _, ok := handler.session(w, r)
	if !ok {
		return
	}

	session.StopRest()
	handler.writeSnapshot(w, session, http.StatusOK)
}

type SaveSessionRequest struct {
	Note string `json:"note"`
}

type SaveSessionResponse struct {
	Message   string `json:"message"`
	WorkoutID int    `json:"workout_id"`
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.save")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req SaveSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("save session, unmarshal json params: %s", err)
			http.Error(w, "save session failed", http.StatusBadRequest)
			return
		}
	}

	workoutID, err := handler.manager.Save(ctx, userID, req.Note)
	if err != nil {
		handler.writeSessionError(w, err)
		return
	}

	respJson, err := json.Marshal(SaveSessionResponse{
		Message:   "Workout saved",
		WorkoutID: workoutID,
	})
	if err != nil {
		log.Errorf("marshal save session response: %s", err)
		http.Error(w, "save session failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}
