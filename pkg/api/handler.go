// Package api exposes the solver over HTTP. The surface is a small job API:
// submit a problem, poll the handle for the current best schedule, terminate
// early, or run a one-shot score analysis.
package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
	"github.com/ewanlister/shopfloor-scheduler/pkg/jobs"
	"github.com/ewanlister/shopfloor-scheduler/pkg/problem"
)

// Handler holds the HTTP routes and their collaborators.
type Handler struct {
	manager *jobs.Manager
	engine  *scoring.Engine
	logger  *zap.Logger

	Mux *chi.Mux
}

// NewHandler wires the job manager and scoring engine into a chi router.
func NewHandler(manager *jobs.Manager, engine *scoring.Engine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		manager: manager,
		engine:  engine,
		logger:  logger,
		Mux:     chi.NewRouter(),
	}
	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.Mux.Use(h.requestLogger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/schedules", func(r chi.Router) {
		r.Post("/solve", h.Solve)
		r.Get("/list", h.List)
		r.Put("/analyze", h.Analyze)
		r.Route("/{jobID}", func(r chi.Router) {
			r.Get("/", h.GetSchedule)
			r.Get("/status", h.GetStatus)
			r.Delete("/", h.Terminate)
		})
	})
}

// ServeHTTP makes the handler usable directly as an http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Mux.ServeHTTP(w, r)
}

// solveResponse carries the handle of a submitted job.
type solveResponse struct {
	JobID string `json:"jobID"`
}

// scheduleResponse is the snapshot returned for a job: the current best
// schedule (omitted on status-only requests), its score and the solver state.
type scheduleResponse struct {
	Score        string              `json:"score"`
	SolverStatus jobs.Status         `json:"solverStatus"`
	Schedule     *problem.Definition `json:"schedule,omitempty"`
}

// Solve submits a problem for background solving. An empty body submits the
// built-in demo problem.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	def, err := h.readProblem(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	resolved, err := problem.Resolve(def)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	jobID := h.manager.Submit(resolved)
	h.writeJSON(w, r, http.StatusOK, solveResponse{JobID: jobID})
}

// List returns the IDs of all cached jobs.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.manager.List())
}

// GetSchedule returns the job's current best schedule with score and status.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	job, ok := h.lookupJob(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, scheduleResponse{
		Score:        job.Score.String(),
		SolverStatus: job.Status,
		Schedule:     problem.Encode(job.Schedule),
	})
}

// GetStatus returns score and solver state only.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	job, ok := h.lookupJob(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, scheduleResponse{
		Score:        job.Score.String(),
		SolverStatus: job.Status,
	})
}

// Terminate stops a running job early and returns its final snapshot.
func (h *Handler) Terminate(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job, err := h.manager.Terminate(jobID)
	if err != nil {
		h.jobError(w, r, err)
		return
	}
	if job.Err != nil {
		h.internalServerError(w, r, job.Err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, scheduleResponse{
		Score:        job.Score.String(),
		SolverStatus: job.Status,
		Schedule:     problem.Encode(job.Schedule),
	})
}

// Analyze scores a fully specified schedule without solving and returns the
// per-constraint penalty breakdown.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var def problem.Definition
	if err := h.readJSON(r, &def); err != nil {
		h.badRequest(w, r, err)
		return
	}

	resolved, err := problem.Resolve(&def)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, h.engine.Analyze(resolved))
}

// readProblem decodes the request body, falling back to the demo problem
// when the body is empty.
func (h *Handler) readProblem(r *http.Request) (*problem.Definition, error) {
	var def problem.Definition
	err := h.readJSON(r, &def)
	switch {
	case errors.Is(err, errEmptyBody):
		return problem.Default(), nil
	case err != nil:
		return nil, err
	default:
		return &def, nil
	}
}

// lookupJob fetches the job named in the URL, writing the error response
// itself when the job is missing or failed.
func (h *Handler) lookupJob(w http.ResponseWriter, r *http.Request) (jobs.Job, bool) {
	jobID := chi.URLParam(r, "jobID")
	job, err := h.manager.Get(jobID)
	if err != nil {
		h.jobError(w, r, err)
		return jobs.Job{}, false
	}
	if job.Err != nil {
		h.internalServerError(w, r, job.Err)
		return jobs.Job{}, false
	}
	return job, true
}

func (h *Handler) jobError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, jobs.ErrNotFound) {
		h.notFound(w, r, err)
		return
	}
	h.internalServerError(w, r, err)
}
