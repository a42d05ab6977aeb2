package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
	"github.com/careerpilot/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Position       string `json:"position" example:"Software Developer"`
	Industry       string `json:"industry" example:"Technology"`
	DifficultyTier string `json:"difficulty_tier,omitempty" example:"entry"`
	Length         *int   `json:"length,omitempty" example:"6"`
}

func (r *CreateSessionRequest) Validate() error {
	if strings.TrimSpace(r.Position) == "" {
		return errors.New("position is required")
	}
	if strings.TrimSpace(r.Industry) == "" {
		return errors.New("industry is required")
	}
	if r.DifficultyTier != "" {
		if _, err := questionbank.ParseDifficultyTier(r.DifficultyTier); err != nil {
			return errors.New("invalid difficulty_tier: must be entry, intermediate, or senior")
		}
	}
	if r.Length != nil && *r.Length <= 0 {
		return errors.New("length must be positive")
	}
	return nil
}

type SessionQuestion struct {
	Number   int      `json:"number" example:"0"`
	Text     string   `json:"text" example:"Tell me about yourself and why you are interested in a Software Developer role."`
	Category string   `json:"category" example:"behavioral"`
	Tips     []string `json:"tips"`
}

type SessionResponse struct {
	ID                   string            `json:"id" example:"3f2a9c1e8b7d4e6fa0b1c2d3e4f5a6b7"`
	Position             string            `json:"position" example:"Software Developer"`
	Industry             string            `json:"industry" example:"Technology"`
	DifficultyTier       string            `json:"difficulty_tier" example:"entry"`
	CatalogVersion       string            `json:"catalog_version" example:"2026.1"`
	Status               string            `json:"status" example:"in_progress"`
	CurrentQuestionIndex int               `json:"current_question_index" example:"0"`
	TotalQuestions       int               `json:"total_questions" example:"6"`
	OverallScore         *int              `json:"overall_score,omitempty" example:"75"`
	Questions            []SessionQuestion `json:"questions"`
	CurrentQuestion      *SessionQuestion  `json:"current_question,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	CompletedAt          *time.Time        `json:"completed_at,omitempty"`
}

type SessionSummaryResponse struct {
	ID                   string     `json:"id" example:"3f2a9c1e8b7d4e6fa0b1c2d3e4f5a6b7"`
	Position             string     `json:"position" example:"Software Developer"`
	Industry             string     `json:"industry" example:"Technology"`
	DifficultyTier       string     `json:"difficulty_tier" example:"entry"`
	Status               string     `json:"status" example:"completed"`
	CurrentQuestionIndex int        `json:"current_question_index" example:"6"`
	TotalQuestions       int        `json:"total_questions" example:"6"`
	OverallScore         *int       `json:"overall_score,omitempty" example:"75"`
	CreatedAt            time.Time  `json:"created_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

func toSessionResponse(s *practicesession.Session) SessionResponse {
	questions := make([]SessionQuestion, len(s.Questions))
	for i, q := range s.Questions {
		questions[i] = SessionQuestion{
			Number:   i,
			Text:     q.Text,
			Category: string(q.Category),
			Tips:     q.Tips,
		}
	}

	resp := SessionResponse{
		ID:                   s.ID,
		Position:             s.Position,
		Industry:             s.Industry,
		DifficultyTier:       string(s.Tier),
		CatalogVersion:       s.CatalogVersion,
		Status:               string(s.Status),
		CurrentQuestionIndex: s.CurrentQuestionIndex,
		TotalQuestions:       s.Len(),
		OverallScore:         s.OverallScore,
		Questions:            questions,
		CreatedAt:            s.CreatedAt,
		CompletedAt:          s.CompletedAt,
	}
	if !s.IsCompleted() && !s.AllAnswered() {
		resp.CurrentQuestion = &questions[s.CurrentQuestionIndex]
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a practice session.
// @Summary      Create a practice session
// @Description  Builds a fixed question sequence for the position, industry and tier. An unsupported industry yields a session with no questions.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                true  "Caller's user id"
// @Param        body       body      CreateSessionRequest  true  "Session to create"
// @Success      201        {object}  SessionResponse
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tier := questionbank.TierEntry
	if req.DifficultyTier != "" {
		tier, _ = questionbank.ParseDifficultyTier(req.DifficultyTier)
	}

	var (
		session *practicesession.Session
		err     error
	)
	if req.Length != nil {
		session, err = h.svc.CreateSessionWithLength(r.Context(), owner, req.Position, req.Industry, tier, *req.Length)
	} else {
		session, err = h.svc.CreateSession(r.Context(), owner, req.Position, req.Industry, tier)
	}
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, toSessionResponse(session))
}

// listSessions lists the caller's sessions.
// @Summary      List sessions
// @Description  Returns the caller's sessions, newest first.
// @Tags         Sessions
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller's user id"
// @Success      200        {array}   SessionSummaryResponse
// @Failure      401        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions [get]
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	summaries, err := h.svc.ListSessions(r.Context(), owner)
	if h.handleServiceError(w, err) {
		return
	}

	response := make([]SessionSummaryResponse, len(summaries))
	for i, s := range summaries {
		response[i] = SessionSummaryResponse{
			ID:                   s.ID,
			Position:             s.Position,
			Industry:             s.Industry,
			DifficultyTier:       string(s.Tier),
			Status:               string(s.Status),
			CurrentQuestionIndex: s.CurrentQuestionIndex,
			TotalQuestions:       s.TotalQuestions,
			OverallScore:         s.OverallScore,
			CreatedAt:            s.CreatedAt,
			CompletedAt:          s.CompletedAt,
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// getSession returns a session with its questions.
// @Summary      Get a session
// @Description  Returns the session, its questions and the question awaiting an answer. Use it to resume an interrupted session.
// @Tags         Sessions
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller's user id"
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	session, err := h.svc.GetSession(r.Context(), r.PathValue("sessionID"))
	if h.handleServiceError(w, err) {
		return
	}
	if session.OwnerID != owner {
		h.handleServiceError(w, practicesession.NewError(practicesession.ErrNotOwner, session.ID, practicesession.NoQuestion, nil))
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// deleteSession deletes a session with its responses and feedback.
// @Summary      Delete a session
// @Tags         Sessions
// @Param        X-User-ID  header    string  true  "Caller's user id"
// @Param        sessionID  path      string  true  "Session ID"
// @Success      204
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	if h.handleServiceError(w, h.svc.DeleteSession(r.Context(), owner, r.PathValue("sessionID"))) {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
