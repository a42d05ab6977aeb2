package analyzer

import (
	"context"
	"fmt"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
	"github.com/careerpilot/backend/internal/domain/questionbank"
)

// Request is everything the analysis service sees about one answer.
type Request struct {
	Question     string
	Category     questionbank.Category
	ResponseText string
	Position     string
	Industry     string
	Tier         questionbank.DifficultyTier
}

// Analyzer scores a single free-text answer.
// Implementations may call an LLM, use heuristics, or return canned results (for tests).
// Analyze is called at most once per submission attempt and must not retry
// internally; retry policy belongs to the caller.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (practicesession.Assessment, error)
}

// AnalysisError is returned when analysis fails so the caller can distinguish
// between "the service returned something unusable" and "the service was unreachable."
type AnalysisError struct {
	Reason  string
	Wrapped error
}

func (e *AnalysisError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("analysis failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("analysis failed: %s", e.Reason)
}

func (e *AnalysisError) Unwrap() error {
	return e.Wrapped
}
