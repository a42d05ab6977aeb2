package store

import (
	"context"
	"errors"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflicting update")
	ErrForbidden      = errors.New("forbidden")
	ErrFeedbackExists = errors.New("feedback already exists")
)

// Store persists sessions, their responses and their feedback. Every method
// that touches more than one table does so in a single transaction.
type Store interface {
	SaveSession(ctx context.Context, s *practicesession.Session) error
	GetSession(ctx context.Context, id string) (*practicesession.Session, error)
	ListSessionsByOwner(ctx context.Context, ownerID string) ([]practicesession.Summary, error)

	// DeleteSession removes a session with its responses and feedback.
	// It returns ErrForbidden when ownerID does not own the session.
	DeleteSession(ctx context.Context, id, ownerID string) error

	// RecordResponse stores r and advances the session cursor from
	// expectedIndex to expectedIndex+1. It returns ErrConflict when the
	// stored cursor no longer equals expectedIndex.
	RecordResponse(ctx context.Context, r *practicesession.Response, expectedIndex int) error
	ListResponses(ctx context.Context, sessionID string) ([]practicesession.Response, error)

	// CompleteSession stores fb and marks the session completed with fb's
	// overall score. It returns ErrFeedbackExists when feedback is already
	// stored and ErrConflict when the session is not at questionCount.
	CompleteSession(ctx context.Context, fb *practicesession.Feedback, questionCount int) error
	GetFeedback(ctx context.Context, sessionID string) (*practicesession.Feedback, error)
}
