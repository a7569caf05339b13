package routines

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/caessy/tracker/internal/middleware"
	"github.com/caessy/tracker/internal/telemetry/tracing"
	"github.com/caessy/tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=routines_mocks_test.go -package=routines_test

type routinesRepo interface {
	List(ctx context.Context, userID int) ([]Routine, error)
	Create(ctx context.Context, userID int, params CreateRoutineParams) (int, error)
	Delete(ctx context.Context, userID, routineID int) error
}

type seedResolver interface {
	ResolveSeed(ctx context.Context, userID, routineID int) (*Seed, error)
}

type Handler struct {
	repo     routinesRepo
	resolver seedResolver
}

func NewHandler(repo routinesRepo, resolver seedResolver) *Handler {
	return &Handler{
		repo:     repo,
		resolver: resolver,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("routines")
	router.HandleFunc("", handler.HandleCreate).Methods("POST", "OPTIONS").Name("create-routine")
	router.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("routine")
	router.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-routine")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	routinesList, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list routines: %s", err)
		http.Error(w, "list routines failed", http.StatusInternalServerError)
		return
	}

	routinesJson, err := json.Marshal(routinesList)
	if err != nil {
		log.Errorf("marshal routines: %s", err)
		http.Error(w, "list routines failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, routinesJson, http.StatusOK)
}

// HandleGet resolves the routine into a session seed: its exercises in
// routine order, each with the suggestion derived from the user's most
// recent workout of this routine.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
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
		case errors.Is(err, ErrRoutineNotFound):
			http.Error(w, "routine not found", http.StatusNotFound)
		case errors.Is(err, ErrRoutineForbidden):
			http.Error(w, "no can do", http.StatusForbidden)
		default:
			log.Errorf("resolve routine %d: %s", routineID, err)
			http.Error(w, "get routine failed", http.StatusInternalServerError)
		}
		return
	}

	seedJson, err := json.Marshal(seed)
	if err != nil {
		log.Errorf("marshal routine seed: %s", err)
		http.Error(w, "get routine failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, seedJson, http.StatusOK)
}

type CreateRoutineRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Exercises   []struct {
		ExerciseTypeID int `json:"exercise_type_id"`
	} `json:"exercises"`
}

type CreateRoutineResponse struct {
	Message   string `json:"message"`
	RoutineID int    `json:"routine_id"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.create")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req CreateRoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("create routine, unmarshal json params: %s", err)
		http.Error(w, "create routine failed", http.StatusBadRequest)
		return
	}

	if len(req.Name) < 1 || len(req.Name) > 30 {
		http.Error(w, "error, name must be between 1 and 30 characters", http.StatusBadRequest)
		return
	}
	if len(req.Exercises) == 0 {
		http.Error(w, "error, at least one exercise is required", http.StatusBadRequest)
		return
	}

	params := CreateRoutineParams{
		Name:        req.Name,
		Description: req.Description,
	}
	for _, exercise := range req.Exercises {
		params.ExerciseTypeIDs = append(params.ExerciseTypeIDs, exercise.ExerciseTypeID)
	}

	routineID, err := handler.repo.Create(ctx, userID, params)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "routine name already exists", http.StatusConflict)
			return
		}
		log.Errorf("create routine: %s", err)
		http.Error(w, "create routine failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("routine %d [%s] created by user %d", routineID, req.Name, userID)

	respJson, err := json.Marshal(CreateRoutineResponse{
		Message:   "Routine created successfully",
		RoutineID: routineID,
	})
	if err != nil {
		log.Errorf("marshal create routine response: %s", err)
		http.Error(w, "create routine failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
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

	if err := handler.repo.Delete(ctx, userID, routineID); err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete routine: %s", err)
		http.Error(w, "delete routine failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("routine %d deleted by user %d", routineID, userID)
	w.WriteHeader(http.StatusNoContent)
}
