package api

import "net/http"

// RegisterRoutes wires every API endpoint onto mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions", h.listSessions)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.deleteSession)

	// Responses
	mux.HandleFunc("POST /sessions/{sessionID}/responses", h.submitResponse)
	mux.HandleFunc("GET /sessions/{sessionID}/responses", h.listResponses)

	// Feedback
	mux.HandleFunc("GET /sessions/{sessionID}/feedback", h.getFeedback)
	mux.HandleFunc("POST /sessions/{sessionID}/feedback", h.generateFeedback)

	// Catalog
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("GET /industries", h.listIndustries)
}
