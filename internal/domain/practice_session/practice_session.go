package practicesession

import (
	"fmt"
	"strings"
	"time"

	"github.com/careerpilot/backend/internal/domain/questionbank"
	"github.com/careerpilot/backend/internal/id"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Session is one mock-interview attempt over a fixed, ordered question list.
type Session struct {
	ID             string
	OwnerID        string
	Position       string
	Industry       string
	Tier           questionbank.DifficultyTier
	CatalogVersion string
	Questions      []questionbank.QuestionTemplate

	Status               Status
	CurrentQuestionIndex int
	OverallScore         *int // set once, when the session completes

	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Summary is the list-view projection of a session.
type Summary struct {
	ID                   string
	Position             string
	Industry             string
	Tier                 questionbank.DifficultyTier
	Status               Status
	CurrentQuestionIndex int
	TotalQuestions       int
	OverallScore         *int
	CreatedAt            time.Time
	CompletedAt          *time.Time
}

// NewWithConfig builds a session for ownerID from the given pools.
//
// Questions are drawn round-robin (behavioral, technical, situational, ...)
// until cfg.Length questions are collected or every pool is exhausted. Running
// out early is not an error: the session simply has fewer questions.
func NewWithConfig(ownerID string, pools questionbank.Pools, cfg SessionConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		ID:             id.GenerateID(),
		OwnerID:        ownerID,
		Position:       strings.TrimSpace(cfg.Position),
		Industry:       strings.TrimSpace(cfg.Industry),
		Tier:           cfg.Tier,
		CatalogVersion: questionbank.Version,
		Questions:      drawRoundRobin(pools, cfg.Length),
		Status:         StatusInProgress,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func drawRoundRobin(pools questionbank.Pools, length int) []questionbank.QuestionTemplate {
	order := questionbank.Categories()
	next := make(map[questionbank.Category]int, len(order))
	questions := make([]questionbank.QuestionTemplate, 0, length)

	for len(questions) < length {
		drew := false
		for _, c := range order {
			if len(questions) == length {
				break
			}
			pool := pools.ByCategory(c)
			if next[c] < len(pool) {
				questions = append(questions, pool[next[c]])
				next[c]++
				drew = true
			}
		}
		if !drew {
			break
		}
	}
	return questions
}

// Len returns the effective number of questions, N.
func (s *Session) Len() int {
	return len(s.Questions)
}

func (s *Session) IsCompleted() bool {
	return s.Status == StatusCompleted
}

// AllAnswered reports whether the cursor has reached the end of the sequence.
func (s *Session) AllAnswered() bool {
	return s.CurrentQuestionIndex >= len(s.Questions)
}

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() (questionbank.QuestionTemplate, error) {
	if s.IsCompleted() || s.AllAnswered() {
		return questionbank.QuestionTemplate{}, NewError(ErrSessionAlreadyComplete, s.ID, s.CurrentQuestionIndex, nil)
	}
	return s.Questions[s.CurrentQuestionIndex], nil
}

// Advance moves the cursor past the question at index expected. The expected
// index acts as a version token: a mismatch means another submission got
// there first.
func (s *Session) Advance(expected int) error {
	if s.IsCompleted() || s.AllAnswered() {
		return NewError(ErrSessionAlreadyComplete, s.ID, s.CurrentQuestionIndex, nil)
	}
	if s.CurrentQuestionIndex != expected {
		return NewError(ErrConcurrentModification, s.ID, expected,
			fmt.Errorf("expected index %d, found %d", expected, s.CurrentQuestionIndex))
	}
	s.CurrentQuestionIndex++
	return nil
}

// Complete moves the session to its terminal state.
func (s *Session) Complete(score int, at time.Time) error {
	if s.IsCompleted() {
		return NewError(ErrSessionAlreadyComplete, s.ID, NoQuestion, nil)
	}
	if !s.AllAnswered() {
		return NewError(ErrIncompleteSession, s.ID, s.CurrentQuestionIndex, nil)
	}
	s.Status = StatusCompleted
	s.OverallScore = &score
	s.CompletedAt = &at
	return nil
}
