package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
	"github.com/careerpilot/backend/internal/domain/questionbank"
)

// LLMAnalyzer scores answers by calling an OpenAI-compatible chat completion
// endpoint (Ollama, LM Studio, vLLM, hosted APIs).
type LLMAnalyzer struct {
	url    string // e.g. "http://localhost:1234"
	model  string // e.g. "qwen3-8b"
	apiKey string // optional bearer token
	client *http.Client
}

// Compile-time check: *LLMAnalyzer satisfies the Analyzer interface.
var _ Analyzer = (*LLMAnalyzer)(nil)

// NewLLMAnalyzer creates an analyzer that calls the given endpoint.
// Callers bound each call with a context deadline; the client timeout is
// only a backstop.
func NewLLMAnalyzer(url, model, apiKey string) *LLMAnalyzer {
	return &LLMAnalyzer{
		url:    strings.TrimRight(url, "/"),
		model:  model,
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ============================================================================
// Analyzer interface
// ============================================================================

// Analyze sends the answer to the LLM once and validates the structured
// result. Any transport failure or schema mismatch is an *AnalysisError.
func (a *LLMAnalyzer) Analyze(ctx context.Context, req Request) (practicesession.Assessment, error) {
	content, err := a.callLLM(ctx, buildPrompt(req))
	if err != nil {
		return practicesession.Assessment{}, &AnalysisError{Reason: "LLM call failed", Wrapped: err}
	}

	jsonStr := extractJSON(content)
	if jsonStr == "" {
		return practicesession.Assessment{}, &AnalysisError{Reason: "no JSON object found in LLM response"}
	}

	return parseAssessment(jsonStr)
}

// ============================================================================
// Result schema
// ============================================================================

// wireAssessment mirrors the JSON the model is asked for. Pointer fields let
// us tell a missing field from a zero value.
type wireAssessment struct {
	Score              *int      `json:"score"`
	CommunicationScore *int      `json:"communication_score"`
	ContentScore       *int      `json:"content_score"`
	StructureScore     *int      `json:"structure_score"`
	Strengths          *[]string `json:"strengths"`
	Improvements       *[]string `json:"improvements"`
	SuggestedAnswer    *string   `json:"suggested_answer"`
	KeyPointsCovered   *[]string `json:"key_points_covered"`
	KeyPointsMissed    *[]string `json:"key_points_missed"`
}

func parseAssessment(jsonStr string) (practicesession.Assessment, error) {
	var w wireAssessment
	if err := json.Unmarshal([]byte(jsonStr), &w); err != nil {
		return practicesession.Assessment{}, &AnalysisError{Reason: "invalid JSON from LLM", Wrapped: err}
	}

	var missing []string
	check := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}
	check("score", w.Score != nil)
	check("communication_score", w.CommunicationScore != nil)
	check("content_score", w.ContentScore != nil)
	check("structure_score", w.StructureScore != nil)
	check("strengths", w.Strengths != nil)
	check("improvements", w.Improvements != nil)
	check("suggested_answer", w.SuggestedAnswer != nil)
	check("key_points_covered", w.KeyPointsCovered != nil)
	check("key_points_missed", w.KeyPointsMissed != nil)
	if len(missing) > 0 {
		return practicesession.Assessment{}, &AnalysisError{
			Reason: "missing fields: " + strings.Join(missing, ", "),
		}
	}

	a := practicesession.Assessment{
		Score:              *w.Score,
		CommunicationScore: *w.CommunicationScore,
		ContentScore:       *w.ContentScore,
		StructureScore:     *w.StructureScore,
		Strengths:          cleanList(*w.Strengths),
		Improvements:       cleanList(*w.Improvements),
		SuggestedAnswer:    strings.TrimSpace(*w.SuggestedAnswer),
		KeyPointsCovered:   cleanList(*w.KeyPointsCovered),
		KeyPointsMissed:    cleanList(*w.KeyPointsMissed),
	}
	if err := a.Validate(); err != nil {
		return practicesession.Assessment{}, &AnalysisError{Reason: "invalid scores", Wrapped: err}
	}
	return a, nil
}

// cleanList trims entries and drops empty ones. It never returns nil.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single request to the LLM and returns the raw text response.
func (a *LLMAnalyzer) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: a.model,
		Messages: []llmMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON returns the first complete JSON object in s, or "" when there
// is none. Models tend to wrap the object in prose or markdown fences.
func extractJSON(s string) string {
	for i := strings.IndexByte(s, '{'); i >= 0; {
		var raw json.RawMessage
		if err := json.NewDecoder(strings.NewReader(s[i:])).Decode(&raw); err == nil {
			return string(raw)
		}
		next := strings.IndexByte(s[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return ""
}

// ============================================================================
// Prompt builders
//
// One prompt per question category. Each ends with the JSON schema so it is
// the last thing the model sees.
// ============================================================================

const resultSchema = `{"score": 0-100, "communication_score": 0-100, "content_score": 0-100, "structure_score": 0-100,
 "strengths": ["..."], "improvements": ["..."], "suggested_answer": "...",
 "key_points_covered": ["..."], "key_points_missed": ["..."]}`

func buildPrompt(req Request) string {
	var rules string
	switch req.Category {
	case questionbank.CategoryTechnical:
		rules = `RULES:
- Judge technical accuracy first, then depth appropriate to the level.
- Reward concrete examples and correct terminology.
- Penalize confident statements that are wrong.`
	case questionbank.CategorySituational:
		rules = `RULES:
- Judge the judgement shown: priorities, stakeholders, and follow-through.
- Reward a clear sequence of steps.
- Penalize answers that avoid making a decision.`
	default:
		rules = `RULES:
- Judge the answer as a behavioral answer: situation, task, action, result.
- Reward specific personal contribution and measurable outcomes.
- Penalize vague or hypothetical answers.`
	}

	return fmt.Sprintf(`/no_think
You are an interview coach scoring one answer from a mock interview.

CANDIDATE: %s level, applying for %s in %s.

%s

QUESTION (%s):
%s

CANDIDATE'S ANSWER:
%s

Respond with ONLY this JSON, no explanation, no markdown:
%s`,
		req.Tier, req.Position, req.Industry, rules, req.Category, req.Question, req.ResponseText, resultSchema)
}
