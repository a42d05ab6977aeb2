package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/careerpilot/backend/internal/domain/questionbank"
)

const validResult = `{"score": 82, "communication_score": 80, "content_score": 85, "structure_score": 78,
 "strengths": ["clear example", " "], "improvements": ["quantify impact"],
 "suggested_answer": "  Describe the outage and your fix. ",
 "key_points_covered": ["logs"], "key_points_missed": []}`

func sampleRequest() Request {
	return Request{
		Question:     "How would you find a production bug?",
		Category:     questionbank.CategoryTechnical,
		ResponseText: "I would start from the logs.",
		Position:     "Software Developer",
		Industry:     "Technology",
		Tier:         questionbank.TierEntry,
	}
}

// chatServer returns a server that answers every completion with content.
func chatServer(t *testing.T, status int, content string, calls *int32, seen *llmRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAnalyze_ValidResult(t *testing.T) {
	var seen llmRequest
	srv := chatServer(t, http.StatusOK, "Here you go:\n```json\n"+validResult+"\n```", nil, &seen)

	a, err := NewLLMAnalyzer(srv.URL, "test-model", "").Analyze(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Score != 82 || a.CommunicationScore != 80 || a.ContentScore != 85 || a.StructureScore != 78 {
		t.Errorf("unexpected scores: %+v", a)
	}
	if len(a.Strengths) != 1 || a.Strengths[0] != "clear example" {
		t.Errorf("expected blank strengths dropped, got %v", a.Strengths)
	}
	if a.SuggestedAnswer != "Describe the outage and your fix." {
		t.Errorf("expected trimmed suggested answer, got %q", a.SuggestedAnswer)
	}
	if a.KeyPointsMissed == nil {
		t.Error("expected empty, non-nil key points missed")
	}

	if seen.Model != "test-model" {
		t.Errorf("expected model test-model, got %q", seen.Model)
	}
	if len(seen.Messages) != 1 || !strings.Contains(seen.Messages[0].Content, "How would you find a production bug?") {
		t.Error("expected prompt to contain the question")
	}
}

func TestAnalyze_SchemaMismatch(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no json", "I cannot grade this."},
		{"missing fields", `{"score": 80, "strengths": []}`},
		{"wrong type", `{"score": "high", "communication_score": 80, "content_score": 85, "structure_score": 78,
			"strengths": [], "improvements": [], "suggested_answer": "", "key_points_covered": [], "key_points_missed": []}`},
		{"out of range", `{"score": 120, "communication_score": 80, "content_score": 85, "structure_score": 78,
			"strengths": [], "improvements": [], "suggested_answer": "", "key_points_covered": [], "key_points_missed": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := chatServer(t, http.StatusOK, tt.content, nil, nil)

			_, err := NewLLMAnalyzer(srv.URL, "m", "").Analyze(context.Background(), sampleRequest())
			var ae *AnalysisError
			if !errors.As(err, &ae) {
				t.Fatalf("expected *AnalysisError, got %v", err)
			}
		})
	}
}

func TestAnalyze_CalledOnceOnFailure(t *testing.T) {
	var calls int32
	srv := chatServer(t, http.StatusInternalServerError, "", &calls, nil)

	_, err := NewLLMAnalyzer(srv.URL, "m", "").Analyze(context.Background(), sampleRequest())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected exactly one call, got %d", n)
	}
}

func TestAnalyze_RespectsContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewLLMAnalyzer(srv.URL, "m", "").Analyze(ctx, sampleRequest())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded in chain, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("expected call to return promptly after the deadline")
	}
}

func TestAnalyze_SendsBearerToken(t *testing.T) {
	var auth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": validResult}}},
		})
	}))
	defer srv.Close()

	if _, err := NewLLMAnalyzer(srv.URL+"/", "m", "secret").Analyze(context.Background(), sampleRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := auth.Load(); got != "Bearer secret" {
		t.Errorf("expected bearer token, got %v", got)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{`prefix {"a":{"b":2}} suffix`, `{"a":{"b":2}}`},
		{`{"text":"brace } inside"}`, `{"text":"brace } inside"}`},
		{`{"text":"escaped \" quote }"}`, `{"text":"escaped \" quote }"}`},
		{`no json here`, ``},
		{`{"unterminated": 1`, ``},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{`{not json} then {"a":1}`, `{"a":1}`},
	}

	for _, tt := range tests {
		if got := extractJSON(tt.in); got != tt.want {
			t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildPrompt_PerCategory(t *testing.T) {
	req := sampleRequest()

	req.Category = questionbank.CategoryBehavioral
	if !strings.Contains(buildPrompt(req), "situation, task, action, result") {
		t.Error("expected STAR rules for behavioral questions")
	}

	req.Category = questionbank.CategorySituational
	if !strings.Contains(buildPrompt(req), "stakeholders") {
		t.Error("expected judgement rules for situational questions")
	}

	req.Category = questionbank.CategoryTechnical
	p := buildPrompt(req)
	if !strings.Contains(p, "technical accuracy") {
		t.Error("expected accuracy rules for technical questions")
	}
	if !strings.Contains(p, "entry level, applying for Software Developer in Technology") {
		t.Error("expected candidate context in prompt")
	}
}
