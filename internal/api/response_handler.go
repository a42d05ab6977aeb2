package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitResponseRequest struct {
	Text string `json:"text" example:"At my last internship I led the migration of our CI pipeline..."`
}

func (r *SubmitResponseRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("text is required")
	}
	return nil
}

type ResponseRecord struct {
	ID                 string    `json:"id" example:"9a8b7c6d5e4f30211a2b3c4d5e6f7a8b"`
	SessionID          string    `json:"session_id" example:"3f2a9c1e8b7d4e6fa0b1c2d3e4f5a6b7"`
	QuestionNumber     int       `json:"question_number" example:"0"`
	QuestionText       string    `json:"question_text"`
	QuestionCategory   string    `json:"question_category" example:"behavioral"`
	ResponseText       string    `json:"response_text"`
	Score              int       `json:"score" example:"82"`
	CommunicationScore int       `json:"communication_score" example:"80"`
	ContentScore       int       `json:"content_score" example:"85"`
	StructureScore     int       `json:"structure_score" example:"78"`
	Strengths          []string  `json:"strengths"`
	Improvements       []string  `json:"improvements"`
	SuggestedAnswer    string    `json:"suggested_answer"`
	KeyPointsCovered   []string  `json:"key_points_covered"`
	KeyPointsMissed    []string  `json:"key_points_missed"`
	CreatedAt          time.Time `json:"created_at"`
}

// SubmitResponseResponse is the scored response. Feedback is included once
// the answer completes the session; FeedbackPending means it could not be
// generated yet and POST /sessions/{sessionID}/feedback should be retried.
type SubmitResponseResponse struct {
	Response        ResponseRecord    `json:"response"`
	Completed       bool              `json:"completed"`
	Feedback        *FeedbackResponse `json:"feedback,omitempty"`
	FeedbackPending bool              `json:"feedback_pending,omitempty"`
}

func toResponseRecord(r *practicesession.Response) ResponseRecord {
	return ResponseRecord{
		ID:                 r.ID,
		SessionID:          r.SessionID,
		QuestionNumber:     r.QuestionNumber,
		QuestionText:       r.QuestionText,
		QuestionCategory:   string(r.QuestionCategory),
		ResponseText:       r.ResponseText,
		Score:              r.Score,
		CommunicationScore: r.CommunicationScore,
		ContentScore:       r.ContentScore,
		StructureScore:     r.StructureScore,
		Strengths:          nonNil(r.Strengths),
		Improvements:       nonNil(r.Improvements),
		SuggestedAnswer:    r.SuggestedAnswer,
		KeyPointsCovered:   nonNil(r.KeyPointsCovered),
		KeyPointsMissed:    nonNil(r.KeyPointsMissed),
		CreatedAt:          r.CreatedAt,
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// ── Handlers ────────────────────────────────────────────────────────────────

// submitResponse answers the session's current question.
// @Summary      Submit a response
// @Description  Scores the answer to the current question and advances the session. Answering the last question completes the session and returns its feedback.
// @Tags         Responses
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                 true  "Caller's user id"
// @Param        sessionID  path      string                 true  "Session ID"
// @Param        body       body      SubmitResponseRequest  true  "Answer text"
// @Success      201        {object}  SubmitResponseResponse
// @Failure      400        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "session complete or modified concurrently"
// @Failure      503        {object}  map[string]string  "analysis unavailable, retry"
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID}/responses [post]
func (h *Handler) submitResponse(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req SubmitResponseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	response, err := h.svc.SubmitResponse(ctx, sessionID, req.Text)
	pending := errors.Is(err, practicesession.ErrFeedbackPending)
	if !pending && h.handleServiceError(w, err) {
		return
	}

	result := SubmitResponseResponse{
		Response:        toResponseRecord(response),
		FeedbackPending: pending,
	}
	if !pending {
		fb, err := h.svc.GetFeedback(ctx, sessionID)
		if h.handleServiceError(w, err) {
			return
		}
		if fb != nil {
			result.Completed = true
			feedback := toFeedbackResponse(fb)
			result.Feedback = &feedback
		}
	}

	respondJSON(w, http.StatusCreated, result)
}

// listResponses returns the session's scored responses.
// @Summary      List responses
// @Tags         Responses
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller's user id"
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {array}   ResponseRecord
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID}/responses [get]
func (h *Handler) listResponses(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	responses, err := h.svc.ListResponses(r.Context(), sessionID)
	if h.handleServiceError(w, err) {
		return
	}

	result := make([]ResponseRecord, len(responses))
	for i := range responses {
		result[i] = toResponseRecord(&responses[i])
	}
	respondJSON(w, http.StatusOK, result)
}
