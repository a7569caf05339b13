package instructors

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/caessy/tracker/internal/middleware"
	"github.com/caessy/tracker/internal/telemetry/tracing"
	"github.com/caessy/tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=instructors_mocks_test.go -package=instructors_test

type instructorsRepo interface {
	IsInstructor(ctx context.Context, userID int) (bool, error)
	Trainees(ctx context.Context, instructorID int) ([]TraineeLink, error)
	Instructors(ctx context.Context, userID int) ([]InstructorLink, error)
}

type Handler struct {
	repo instructorsRepo
}

func NewHandler(repo instructorsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/instructor/trainees", handler.HandleTrainees).Methods("GET", "OPTIONS").Name("instructor-trainees")
	router.HandleFunc("/user/instructors", handler.HandleInstructors).Methods("GET", "OPTIONS").Name("user-instructors")
}

type TraineesResponse struct {
	Trainees []TraineeLink `json:"trainees"`
}

type InstructorsResponse struct {
	Instructors []InstructorLink `json:"instructors"`
}

func (handler *Handler) HandleTrainees(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.instructors.trainees")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	isInstructor, err := handler.repo.IsInstructor(ctx, userID)
	if err != nil {
		log.Errorf("get trainees, instructor check: %s", err)
		http.Error(w, "get trainees failed", http.StatusInternalServerError)
		return
	}
	if !isInstructor {
		http.Error(w, "error, not an instructor", http.StatusForbidden)
		return
	}

	trainees, err := handler.repo.Trainees(ctx, userID)
	if err != nil {
		log.Errorf("get trainees: %s", err)
		http.Error(w, "get trainees failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(TraineesResponse{Trainees: trainees})
	if err != nil {
		log.Errorf("marshal trainees: %s", err)
		http.Error(w, "get trainees failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleInstructors(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.instructors.instructors")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	links, err := handler.repo.Instructors(ctx, userID)
	if err != nil {
		log.Errorf("get instructors: %s", err)
		http.Error(w, "get instructors failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(InstructorsResponse{Instructors: links})
	if err != nil {
		log.Errorf("marshal instructors: %s", err)
		http.Error(w, "get instructors failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
