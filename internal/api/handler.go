package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
	"github.com/careerpilot/backend/internal/service"
)

// ownerHeader carries the caller's user id. Authentication happens upstream;
// the gateway sets this header on every request it forwards.
const ownerHeader = "X-User-ID"

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	svc    *service.InterviewService
	logger *zap.Logger
}

func NewHandler(svc *service.InterviewService, logger *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

type validator interface {
	Validate() error
}

// decodeAndValidate decodes the JSON body into v and runs its Validate
// method. It writes a 400 and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// ownerID returns the caller's id, or writes a 401 and returns false.
func ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.Header.Get(ownerHeader))
	if id == "" {
		respondError(w, http.StatusUnauthorized, "missing "+ownerHeader+" header")
		return "", false
	}
	return id, true
}

// authorize resolves the caller and checks they own the session in the path.
// It returns the session id, or writes an error and returns false.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner, ok := ownerID(w, r)
	if !ok {
		return "", false
	}
	sessionID := r.PathValue("sessionID")
	if h.handleServiceError(w, h.svc.CheckOwner(r.Context(), owner, sessionID)) {
		return "", false
	}
	return sessionID, true
}

// handleServiceError maps domain error kinds to HTTP responses. Returns true
// if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, practicesession.ErrInvalidConfiguration),
		errors.Is(err, practicesession.ErrEmptyResponse):
		status = http.StatusBadRequest
	case errors.Is(err, practicesession.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, practicesession.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, practicesession.ErrSessionAlreadyComplete),
		errors.Is(err, practicesession.ErrConcurrentModification):
		status = http.StatusConflict
	case errors.Is(err, practicesession.ErrAnalysisUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, practicesession.ErrIncompleteSession),
		errors.Is(err, practicesession.ErrNoResponsesToAggregate):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		respondError(w, status, "internal error")
		return true
	}
	if practicesession.Retryable(err) {
		w.Header().Set("Retry-After", "1")
	}
	respondError(w, status, err.Error())
	return true
}
