package api

import (
	"net/http"
	"time"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
)

type CategoryScoreResponse struct {
	Category string `json:"category" example:"technical"`
	Score    int    `json:"score" example:"72"`
	Answered int    `json:"answered" example:"2"`
}

type FeedbackResponse struct {
	SessionID              string                  `json:"session_id" example:"3f2a9c1e8b7d4e6fa0b1c2d3e4f5a6b7"`
	OverallScore           int                     `json:"overall_score" example:"75"`
	ReadinessLevel         string                  `json:"readiness_level" example:"ready"`
	AggregatedStrengths    []string                `json:"aggregated_strengths"`
	AggregatedImprovements []string                `json:"aggregated_improvements"`
	CategoryScores         []CategoryScoreResponse `json:"category_scores"`
	AverageCommunication   int                     `json:"average_communication" example:"74"`
	AverageContent         int                     `json:"average_content" example:"77"`
	AverageStructure       int                     `json:"average_structure" example:"70"`
	GeneratedAt            time.Time               `json:"generated_at"`
}

func toFeedbackResponse(fb *practicesession.Feedback) FeedbackResponse {
	categories := make([]CategoryScoreResponse, len(fb.CategoryScores))
	for i, cs := range fb.CategoryScores {
		categories[i] = CategoryScoreResponse{
			Category: string(cs.Category),
			Score:    cs.Score,
			Answered: cs.Answered,
		}
	}
	return FeedbackResponse{
		SessionID:              fb.SessionID,
		OverallScore:           fb.OverallScore,
		ReadinessLevel:         string(fb.ReadinessLevel),
		AggregatedStrengths:    nonNil(fb.AggregatedStrengths),
		AggregatedImprovements: nonNil(fb.AggregatedImprovements),
		CategoryScores:         categories,
		AverageCommunication:   fb.AverageCommunication,
		AverageContent:         fb.AverageContent,
		AverageStructure:       fb.AverageStructure,
		GeneratedAt:            fb.GeneratedAt,
	}
}

// getFeedback returns the session's feedback.
// @Summary      Get session feedback
// @Tags         Feedback
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller's user id"
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  FeedbackResponse
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string  "session or feedback not found"
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID}/feedback [get]
func (h *Handler) getFeedback(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	fb, err := h.svc.GetFeedback(r.Context(), sessionID)
	if h.handleServiceError(w, err) {
		return
	}
	if fb == nil {
		respondError(w, http.StatusNotFound, "feedback not available yet")
		return
	}

	respondJSON(w, http.StatusOK, toFeedbackResponse(fb))
}

// generateFeedback computes the feedback for a fully answered session.
// @Summary      Generate session feedback
// @Description  Aggregates the session's responses and completes it. Safe to repeat: existing feedback is returned unchanged.
// @Tags         Feedback
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller's user id"
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  FeedbackResponse
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Failure      422        {object}  map[string]string  "unanswered questions"
// @Failure      500        {object}  map[string]string
// @Router       /sessions/{sessionID}/feedback [post]
func (h *Handler) generateFeedback(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	fb, err := h.svc.GenerateFeedback(r.Context(), sessionID)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toFeedbackResponse(fb))
}
