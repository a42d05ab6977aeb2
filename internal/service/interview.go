package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/careerpilot/backend/internal/analyzer"
	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
	"github.com/careerpilot/backend/internal/domain/questionbank"
	"github.com/careerpilot/backend/internal/metrics"
	"github.com/careerpilot/backend/internal/store"
)

// Options tunes an InterviewService. Zero fields fall back to DefaultOptions.
type Options struct {
	AnalysisTimeout time.Duration
	SessionLength   int
	Policy          practicesession.ReadinessPolicy
	Metrics         *metrics.Metrics
	Now             func() time.Time
}

func DefaultOptions() Options {
	return Options{
		AnalysisTimeout: 30 * time.Second,
		SessionLength:   practicesession.DefaultLength,
		Policy:          practicesession.DefaultReadinessPolicy(),
		Now:             time.Now,
	}
}

// InterviewService runs practice sessions: it builds them from the question
// bank, scores each answer through the analyzer, and aggregates the verdict
// once every question is answered. It holds no per-session state; the store
// is the single source of truth.
type InterviewService struct {
	store    store.Store
	analyzer analyzer.Analyzer
	logger   *zap.Logger
	opts     Options
	metrics  *metrics.Metrics

	feedback singleflight.Group // keyed by session ID
}

func NewInterviewService(s store.Store, a analyzer.Analyzer, logger *zap.Logger, opts Options) *InterviewService {
	defaults := DefaultOptions()
	if opts.AnalysisTimeout <= 0 {
		opts.AnalysisTimeout = defaults.AnalysisTimeout
	}
	if opts.SessionLength <= 0 {
		opts.SessionLength = defaults.SessionLength
	}
	if opts.Policy == (practicesession.ReadinessPolicy{}) {
		opts.Policy = defaults.Policy
	}
	if opts.Now == nil {
		opts.Now = defaults.Now
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	return &InterviewService{
		store:    s,
		analyzer: a,
		logger:   logger,
		opts:     opts,
		metrics:  m,
	}
}

// ============================================================================
// Sessions
// ============================================================================

// CreateSession starts a session of the configured default length.
func (s *InterviewService) CreateSession(ctx context.Context, ownerID, position, industry string, tier questionbank.DifficultyTier) (*practicesession.Session, error) {
	return s.CreateSessionWithLength(ctx, ownerID, position, industry, tier, s.opts.SessionLength)
}

func (s *InterviewService) CreateSessionWithLength(ctx context.Context, ownerID, position, industry string, tier questionbank.DifficultyTier, length int) (*practicesession.Session, error) {
	cfg := practicesession.SessionConfig{
		Position: position,
		Industry: industry,
		Tier:     tier,
		Length:   length,
	}
	if err := cfg.Validate(); err != nil {
		return nil, practicesession.NewError(practicesession.ErrInvalidConfiguration, "", practicesession.NoQuestion, err)
	}

	pools := questionbank.TemplatesFor(industry, position, tier)
	session, err := practicesession.NewWithConfig(ownerID, pools, cfg)
	if err != nil {
		return nil, practicesession.NewError(practicesession.ErrInvalidConfiguration, "", practicesession.NoQuestion, err)
	}

	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.metrics.SessionsCreated.Inc()
	s.logger.Info("session created",
		zap.String("session_id", session.ID),
		zap.String("owner_id", ownerID),
		zap.String("industry", session.Industry),
		zap.String("tier", string(session.Tier)),
		zap.Int("questions", session.Len()),
	)
	if session.Len() == 0 {
		s.logger.Warn("session has no questions",
			zap.String("session_id", session.ID),
			zap.String("industry", session.Industry),
		)
	}
	return session, nil
}

func (s *InterviewService) GetSession(ctx context.Context, sessionID string) (*practicesession.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, practicesession.NewError(practicesession.ErrSessionNotFound, sessionID, practicesession.NoQuestion, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// CheckOwner returns ErrNotOwner unless ownerID owns the session.
func (s *InterviewService) CheckOwner(ctx context.Context, ownerID, sessionID string) error {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.OwnerID != ownerID {
		return practicesession.NewError(practicesession.ErrNotOwner, sessionID, practicesession.NoQuestion, nil)
	}
	return nil
}

// ListSessions returns the owner's sessions, newest first.
func (s *InterviewService) ListSessions(ctx context.Context, ownerID string) ([]practicesession.Summary, error) {
	summaries, err := s.store.ListSessionsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return summaries, nil
}

// DeleteSession removes the session with its responses and feedback.
func (s *InterviewService) DeleteSession(ctx context.Context, ownerID, sessionID string) error {
	err := s.store.DeleteSession(ctx, sessionID, ownerID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return practicesession.NewError(practicesession.ErrSessionNotFound, sessionID, practicesession.NoQuestion, nil)
	case errors.Is(err, store.ErrForbidden):
		return practicesession.NewError(practicesession.ErrNotOwner, sessionID, practicesession.NoQuestion, nil)
	case err != nil:
		return fmt.Errorf("delete session: %w", err)
	}

	s.metrics.SessionsDeleted.Inc()
	s.logger.Info("session deleted", zap.String("session_id", sessionID))
	return nil
}

// ============================================================================
// Responses
// ============================================================================

// SubmitResponse scores text as the answer to the session's current question
// and stores it. Nothing is stored when analysis fails.
//
// When the answer completes the session, feedback is generated before
// returning. If that step fails the response stays stored and is returned
// together with an error wrapping ErrFeedbackPending; GenerateFeedback can
// be retried.
func (s *InterviewService) SubmitResponse(ctx context.Context, sessionID, text string) (*practicesession.Response, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, practicesession.NewError(practicesession.ErrEmptyResponse, sessionID, practicesession.NoQuestion, nil)
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	question, err := session.CurrentQuestion()
	if err != nil {
		return nil, err
	}
	expected := session.CurrentQuestionIndex

	assessment, err := s.analyze(ctx, session, question, text)
	if err != nil {
		return nil, practicesession.NewError(practicesession.ErrAnalysisUnavailable, sessionID, expected, err)
	}

	response, err := practicesession.NewResponse(session, text, assessment)
	if err != nil {
		return nil, err
	}

	err = s.store.RecordResponse(ctx, response, expected)
	switch {
	case errors.Is(err, store.ErrConflict):
		return nil, practicesession.NewError(practicesession.ErrConcurrentModification, sessionID, expected, err)
	case errors.Is(err, store.ErrNotFound):
		return nil, practicesession.NewError(practicesession.ErrSessionNotFound, sessionID, expected, nil)
	case err != nil:
		return nil, fmt.Errorf("record response: %w", err)
	}

	s.metrics.ResponsesRecorded.WithLabelValues(string(question.Category)).Inc()
	s.logger.Info("response recorded",
		zap.String("session_id", sessionID),
		zap.Int("question", expected),
		zap.Int("score", assessment.Score),
	)

	if err := session.Advance(expected); err != nil {
		return nil, err
	}
	if !session.AllAnswered() {
		return response, nil
	}

	if _, err := s.GenerateFeedback(ctx, sessionID); err != nil {
		s.logger.Warn("feedback generation failed after last response",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return response, practicesession.NewError(practicesession.ErrFeedbackPending, sessionID, practicesession.NoQuestion, err)
	}
	return response, nil
}

// analyze calls the analyzer once under the configured timeout and checks
// the result before anything is stored.
func (s *InterviewService) analyze(ctx context.Context, session *practicesession.Session, q questionbank.QuestionTemplate, text string) (practicesession.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.AnalysisTimeout)
	defer cancel()

	start := time.Now()
	assessment, err := s.analyzer.Analyze(ctx, analyzer.Request{
		Question:     q.Text,
		Category:     q.Category,
		ResponseText: text,
		Position:     session.Position,
		Industry:     session.Industry,
		Tier:         session.Tier,
	})
	s.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	if err == nil {
		err = assessment.Validate()
	}
	if err != nil {
		s.metrics.AnalysisFailures.Inc()
		s.logger.Error("analysis failed",
			zap.String("session_id", session.ID),
			zap.Int("question", session.CurrentQuestionIndex),
			zap.Error(err),
		)
		return practicesession.Assessment{}, err
	}
	return assessment, nil
}

// ListResponses returns the session's stored responses by question number.
func (s *InterviewService) ListResponses(ctx context.Context, sessionID string) ([]practicesession.Response, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	responses, err := s.store.ListResponses(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return responses, nil
}

// ============================================================================
// Feedback
// ============================================================================

// GetFeedback returns the stored feedback, or nil when there is none. A
// deleted or unknown session has no feedback; that is not an error.
func (s *InterviewService) GetFeedback(ctx context.Context, sessionID string) (*practicesession.Feedback, error) {
	fb, err := s.store.GetFeedback(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return fb, nil
}

// feedbackTimeout bounds one shared feedback computation. The computation
// outlives the caller that started it, so it cannot use that caller's deadline.
const feedbackTimeout = 30 * time.Second

// GenerateFeedback aggregates and stores the session's feedback, completing
// the session. It is idempotent: once feedback exists it is returned as
// stored. Concurrent calls for the same session share one computation.
//
// A caller whose context ends before the computation finishes gets an error
// wrapping ErrFeedbackPending; the computation itself carries on for the
// callers still waiting.
func (s *InterviewService) GenerateFeedback(ctx context.Context, sessionID string) (*practicesession.Feedback, error) {
	ch := s.feedback.DoChan(sessionID, func() (any, error) {
		workCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), feedbackTimeout)
		defer cancel()
		return s.generateFeedback(workCtx, sessionID)
	})

	select {
	case <-ctx.Done():
		return nil, practicesession.NewError(practicesession.ErrFeedbackPending, sessionID, practicesession.NoQuestion, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*practicesession.Feedback), nil
	}
}

func (s *InterviewService) generateFeedback(ctx context.Context, sessionID string) (*practicesession.Feedback, error) {
	existing, err := s.GetFeedback(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	responses, err := s.store.ListResponses(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}

	fb, err := practicesession.Aggregate(session, responses, s.opts.Policy, s.opts.Now().UTC())
	if err != nil {
		s.logger.Error("feedback aggregation rejected",
			zap.String("session_id", sessionID),
			zap.Int("responses", len(responses)),
			zap.Int("questions", session.Len()),
			zap.Error(err),
		)
		return nil, err
	}

	err = s.store.CompleteSession(ctx, fb, session.Len())
	switch {
	case err == nil:
		s.metrics.FeedbackGenerated.WithLabelValues(string(fb.ReadinessLevel)).Inc()
		s.logger.Info("session completed",
			zap.String("session_id", sessionID),
			zap.Int("overall_score", fb.OverallScore),
			zap.String("readiness", string(fb.ReadinessLevel)),
		)
	case errors.Is(err, store.ErrFeedbackExists):
		// Another process stored it first; fall through and return theirs.
	case errors.Is(err, store.ErrConflict):
		return nil, practicesession.NewError(practicesession.ErrConcurrentModification, sessionID, practicesession.NoQuestion, err)
	case errors.Is(err, store.ErrNotFound):
		return nil, practicesession.NewError(practicesession.ErrSessionNotFound, sessionID, practicesession.NoQuestion, nil)
	default:
		return nil, fmt.Errorf("complete session: %w", err)
	}

	stored, err := s.GetFeedback(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		// Deleted between completion and read-back.
		return nil, practicesession.NewError(practicesession.ErrSessionNotFound, sessionID, practicesession.NoQuestion, nil)
	}
	return stored, nil
}
