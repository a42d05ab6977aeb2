package practicesession

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match them with errors.Is; a *SessionError carries the
// session and question the failure relates to.
var (
	ErrInvalidConfiguration   = errors.New("invalid session configuration")
	ErrEmptyResponse          = errors.New("response text is empty")
	ErrSessionNotFound        = errors.New("session not found")
	ErrNotOwner               = errors.New("session belongs to another user")
	ErrSessionAlreadyComplete = errors.New("session already complete")
	ErrAnalysisUnavailable    = errors.New("analysis unavailable")
	ErrIncompleteSession      = errors.New("session has unanswered questions")
	ErrNoResponsesToAggregate = errors.New("no responses to aggregate")
	ErrConcurrentModification = errors.New("session was modified concurrently")
	ErrFeedbackPending        = errors.New("feedback generation pending")
)

// NoQuestion marks a SessionError that does not relate to a specific question.
const NoQuestion = -1

// SessionError reports a failure together with enough context to decide
// between retrying and restarting the flow.
type SessionError struct {
	Kind          error
	SessionID     string
	QuestionIndex int
	Err           error
}

func (e *SessionError) Error() string {
	msg := e.Kind.Error()
	if e.SessionID != "" {
		msg = fmt.Sprintf("%s: session %s", msg, e.SessionID)
	}
	if e.QuestionIndex >= 0 {
		msg = fmt.Sprintf("%s, question %d", msg, e.QuestionIndex)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *SessionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError builds a SessionError of the given kind.
func NewError(kind error, sessionID string, questionIndex int, cause error) *SessionError {
	return &SessionError{
		Kind:          kind,
		SessionID:     sessionID,
		QuestionIndex: questionIndex,
		Err:           cause,
	}
}

// Retryable reports whether re-issuing the failed call can succeed without
// any other change.
func Retryable(err error) bool {
	return errors.Is(err, ErrAnalysisUnavailable) ||
		errors.Is(err, ErrConcurrentModification) ||
		errors.Is(err, ErrFeedbackPending)
}
