package practicesession

import (
	"errors"
	"fmt"
	"time"

	"github.com/careerpilot/backend/internal/domain/questionbank"
	"github.com/careerpilot/backend/internal/id"
)

// Assessment holds the scoring fields produced by the analysis service for
// a single answer. All fields are populated together.
type Assessment struct {
	Score              int
	CommunicationScore int
	ContentScore       int
	StructureScore     int
	Strengths          []string
	Improvements       []string
	SuggestedAnswer    string
	KeyPointsCovered   []string
	KeyPointsMissed    []string
}

// Validate rejects assessments with out-of-range scores.
func (a Assessment) Validate() error {
	scores := []struct {
		name  string
		value int
	}{
		{"score", a.Score},
		{"communication_score", a.CommunicationScore},
		{"content_score", a.ContentScore},
		{"structure_score", a.StructureScore},
	}

	var errs []error
	for _, s := range scores {
		if s.value < 0 || s.value > 100 {
			errs = append(errs, fmt.Errorf("%s %d out of range [0,100]", s.name, s.value))
		}
	}
	return errors.Join(errs...)
}

// Response is one scored answer to one question. It is never modified after
// it has been stored.
type Response struct {
	ID               string
	SessionID        string
	QuestionNumber   int
	QuestionText     string
	QuestionCategory questionbank.Category
	ResponseText     string
	Assessment
	CreatedAt time.Time
}

// NewResponse records an answer to the session's current question.
func NewResponse(s *Session, text string, a Assessment) (*Response, error) {
	q, err := s.CurrentQuestion()
	if err != nil {
		return nil, err
	}
	return &Response{
		ID:               id.GenerateID(),
		SessionID:        s.ID,
		QuestionNumber:   s.CurrentQuestionIndex,
		QuestionText:     q.Text,
		QuestionCategory: q.Category,
		ResponseText:     text,
		Assessment:       a,
		CreatedAt:        time.Now().UTC(),
	}, nil
}
