package analyzer

import (
	"context"
	"strings"
	"unicode"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
	"github.com/careerpilot/backend/internal/domain/questionbank"
)

// HeuristicAnalyzer scores answers offline from their shape: length,
// sentence structure, STAR markers and quantified results. It is meant for
// local development and simulations, not for real coaching.
type HeuristicAnalyzer struct{}

var _ Analyzer = HeuristicAnalyzer{}

var starMarkers = map[string][]string{
	"situation": {"when", "situation", "context", "at my", "while"},
	"task":      {"task", "goal", "responsible", "needed to", "had to"},
	"action":    {"i decided", "i built", "i led", "i started", "so i", "i worked", "i created"},
	"result":    {"result", "as a result", "outcome", "improved", "reduced", "increased", "learned"},
}

func (HeuristicAnalyzer) Analyze(ctx context.Context, req Request) (practicesession.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return practicesession.Assessment{}, &AnalysisError{Reason: "cancelled", Wrapped: err}
	}

	text := strings.TrimSpace(req.ResponseText)
	lower := strings.ToLower(text)
	words := len(strings.Fields(text))
	sentences := countSentences(text)
	hasNumbers := strings.IndexFunc(text, unicode.IsDigit) >= 0

	var covered, missed []string
	for _, part := range []string{"situation", "task", "action", "result"} {
		if containsAny(lower, starMarkers[part]) {
			covered = append(covered, part)
		} else {
			missed = append(missed, part)
		}
	}

	// Communication: enough words, not a wall of text.
	communication := clamp(words * 100 / 120)
	if words > 350 {
		communication = clamp(communication - (words-350)/5)
	}

	// Structure: several sentences and STAR coverage.
	structure := clamp(len(covered)*20 + min(sentences, 5)*4)

	// Content: length plus evidence.
	content := clamp(words*70/150 + boolScore(hasNumbers, 15) + len(covered)*4)

	score := clamp((communication + structure + content*2) / 4)

	var strengths, improvements []string
	if words >= 80 {
		strengths = append(strengths, "Answer has enough detail to evaluate.")
	} else {
		improvements = append(improvements, "Expand the answer with more specific detail.")
	}
	if hasNumbers {
		strengths = append(strengths, "Uses concrete numbers to support claims.")
	} else {
		improvements = append(improvements, "Quantify the impact of your work.")
	}
	if len(covered) >= 3 {
		strengths = append(strengths, "Follows a clear situation-action-result structure.")
	} else if req.Category != questionbank.CategoryTechnical {
		improvements = append(improvements, "Structure the answer with the STAR method.")
	}
	if sentences < 3 {
		improvements = append(improvements, "Break the answer into several clear points.")
	}

	return practicesession.Assessment{
		Score:              score,
		CommunicationScore: communication,
		ContentScore:       content,
		StructureScore:     structure,
		Strengths:          nonNil(strengths),
		Improvements:       nonNil(improvements),
		SuggestedAnswer:    "Open with the context, state your goal, walk through what you did, and close with a measurable result.",
		KeyPointsCovered:   nonNil(covered),
		KeyPointsMissed:    nonNil(missed),
	}, nil
}

func countSentences(s string) int {
	n := 0
	for _, r := range s {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	if n == 0 && strings.TrimSpace(s) != "" {
		return 1
	}
	return n
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func clamp(v int) int {
	return max(0, min(100, v))
}

func boolScore(ok bool, v int) int {
	if ok {
		return v
	}
	return 0
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
