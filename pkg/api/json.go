package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// errEmptyBody marks a request with no body at all, as opposed to a body
// that failed to parse.
var errEmptyBody = errors.New("empty request body")

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	return err
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to write response",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, err error) {
	h.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: err.Error()})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("internal server error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	h.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
