package practicesession_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
	"github.com/careerpilot/backend/internal/domain/questionbank"
)

func makePool(c questionbank.Category, n int) []questionbank.QuestionTemplate {
	pool := make([]questionbank.QuestionTemplate, n)
	for i := range pool {
		pool[i] = questionbank.QuestionTemplate{
			Text:     string(c) + " " + string(rune('A'+i)),
			Category: c,
		}
	}
	return pool
}

func makePools(b, t, s int) questionbank.Pools {
	return questionbank.Pools{
		Behavioral:  makePool(questionbank.CategoryBehavioral, b),
		Technical:   makePool(questionbank.CategoryTechnical, t),
		Situational: makePool(questionbank.CategorySituational, s),
	}
}

func config(length int) practicesession.SessionConfig {
	cfg := practicesession.DefaultConfig()
	cfg.Position = "Software Developer"
	cfg.Industry = "Technology"
	cfg.Length = length
	return cfg
}

func categories(s *practicesession.Session) []questionbank.Category {
	out := make([]questionbank.Category, len(s.Questions))
	for i, q := range s.Questions {
		out[i] = q.Category
	}
	return out
}

func TestNewWithConfig_RoundRobin(t *testing.T) {
	session, err := practicesession.NewWithConfig("user-1", makePools(5, 5, 5), config(6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []questionbank.Category{
		questionbank.CategoryBehavioral, questionbank.CategoryTechnical, questionbank.CategorySituational,
		questionbank.CategoryBehavioral, questionbank.CategoryTechnical, questionbank.CategorySituational,
	}
	if got := categories(session); !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}

	if session.Questions[3].Text != "behavioral B" {
		t.Errorf("expected second behavioral question, got %q", session.Questions[3].Text)
	}
}

func TestNewWithConfig_InitialState(t *testing.T) {
	session, err := practicesession.NewWithConfig("user-1", makePools(2, 2, 2), config(6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.ID == "" {
		t.Error("expected non-empty ID")
	}
	if session.OwnerID != "user-1" {
		t.Errorf("expected owner user-1, got %q", session.OwnerID)
	}
	if session.Status != practicesession.StatusInProgress {
		t.Errorf("expected in_progress, got %s", session.Status)
	}
	if session.CurrentQuestionIndex != 0 {
		t.Errorf("expected index 0, got %d", session.CurrentQuestionIndex)
	}
	if session.OverallScore != nil || session.CompletedAt != nil {
		t.Error("expected no score or completion time on a new session")
	}
	if session.CatalogVersion != questionbank.Version {
		t.Errorf("expected catalog version %q, got %q", questionbank.Version, session.CatalogVersion)
	}
}

func TestNewWithConfig_Deterministic(t *testing.T) {
	pools := questionbank.TemplatesFor("Technology", "Software Developer", questionbank.TierEntry)

	first, err := practicesession.NewWithConfig("user-1", pools, config(6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := practicesession.NewWithConfig("user-1",
			questionbank.TemplatesFor("Technology", "Software Developer", questionbank.TierEntry), config(6))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first.Questions, again.Questions) {
			t.Fatal("expected identical question sequences for identical parameters")
		}
	}
}

func TestNewWithConfig_PoolsExhausted(t *testing.T) {
	tests := []struct {
		name    string
		pools   questionbank.Pools
		length  int
		wantLen int
		want    []questionbank.Category
	}{
		{
			name:    "one pool runs dry",
			pools:   makePools(3, 1, 3),
			length:  6,
			wantLen: 6,
			want: []questionbank.Category{
				questionbank.CategoryBehavioral, questionbank.CategoryTechnical, questionbank.CategorySituational,
				questionbank.CategoryBehavioral, questionbank.CategorySituational, questionbank.CategoryBehavioral,
			},
		},
		{
			name:    "all pools run dry",
			pools:   makePools(1, 1, 1),
			length:  6,
			wantLen: 3,
		},
		{
			name:    "no questions at all",
			pools:   questionbank.Pools{},
			length:  6,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := practicesession.NewWithConfig("user-1", tt.pools, config(tt.length))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if session.Len() != tt.wantLen {
				t.Fatalf("expected %d questions, got %d", tt.wantLen, session.Len())
			}
			if tt.want != nil && !reflect.DeepEqual(categories(session), tt.want) {
				t.Errorf("expected order %v, got %v", tt.want, categories(session))
			}
		})
	}
}

func TestNewWithConfig_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*practicesession.SessionConfig)
	}{
		{"empty position", func(c *practicesession.SessionConfig) { c.Position = "  " }},
		{"empty industry", func(c *practicesession.SessionConfig) { c.Industry = "" }},
		{"zero length", func(c *practicesession.SessionConfig) { c.Length = 0 }},
		{"negative length", func(c *practicesession.SessionConfig) { c.Length = -3 }},
		{"unknown tier", func(c *practicesession.SessionConfig) { c.Tier = "guru" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config(6)
			tt.mutate(&cfg)

			_, err := practicesession.NewWithConfig("user-1", makePools(2, 2, 2), cfg)
			if !errors.Is(err, practicesession.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := practicesession.DefaultConfig()

	if cfg.Length != 6 {
		t.Errorf("expected default length 6, got %d", cfg.Length)
	}
	if cfg.Tier != questionbank.TierEntry {
		t.Errorf("expected entry tier by default, got %q", cfg.Tier)
	}
}

func TestAdvance_MonotonicCursor(t *testing.T) {
	session, _ := practicesession.NewWithConfig("user-1", makePools(2, 2, 2), config(6))

	for i := 0; i < session.Len(); i++ {
		if _, err := session.CurrentQuestion(); err != nil {
			t.Fatalf("question %d: unexpected error: %v", i, err)
		}
		if err := session.Advance(i); err != nil {
			t.Fatalf("advance %d: unexpected error: %v", i, err)
		}
		if session.CurrentQuestionIndex != i+1 {
			t.Fatalf("expected index %d, got %d", i+1, session.CurrentQuestionIndex)
		}
	}

	if !session.AllAnswered() {
		t.Error("expected all questions answered")
	}
	if _, err := session.CurrentQuestion(); !errors.Is(err, practicesession.ErrSessionAlreadyComplete) {
		t.Errorf("expected ErrSessionAlreadyComplete, got %v", err)
	}
	if err := session.Advance(session.Len()); !errors.Is(err, practicesession.ErrSessionAlreadyComplete) {
		t.Errorf("expected ErrSessionAlreadyComplete, got %v", err)
	}
}

func TestAdvance_StaleIndex(t *testing.T) {
	session, _ := practicesession.NewWithConfig("user-1", makePools(2, 2, 2), config(6))
	_ = session.Advance(0)

	err := session.Advance(0)
	if !errors.Is(err, practicesession.ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
	if session.CurrentQuestionIndex != 1 {
		t.Errorf("expected index to stay at 1, got %d", session.CurrentQuestionIndex)
	}
}

func TestComplete(t *testing.T) {
	session, _ := practicesession.NewWithConfig("user-1", makePools(1, 1, 1), config(3))

	if err := session.Complete(80, time.Now()); !errors.Is(err, practicesession.ErrIncompleteSession) {
		t.Fatalf("expected ErrIncompleteSession before all answers, got %v", err)
	}

	for i := 0; i < session.Len(); i++ {
		_ = session.Advance(i)
	}

	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	if err := session.Complete(80, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.IsCompleted() || *session.OverallScore != 80 || !session.CompletedAt.Equal(at) {
		t.Errorf("unexpected completed state: %+v", session)
	}

	if err := session.Complete(90, at); !errors.Is(err, practicesession.ErrSessionAlreadyComplete) {
		t.Errorf("expected ErrSessionAlreadyComplete on second completion, got %v", err)
	}
	if *session.OverallScore != 80 {
		t.Errorf("expected overall score to be set once, got %d", *session.OverallScore)
	}
}

func TestSessionError(t *testing.T) {
	cause := errors.New("upstream timeout")
	err := practicesession.NewError(practicesession.ErrAnalysisUnavailable, "s1", 2, cause)

	if !errors.Is(err, practicesession.ErrAnalysisUnavailable) {
		t.Error("expected error to match its kind")
	}
	if !errors.Is(err, cause) {
		t.Error("expected error to match its cause")
	}
	if errors.Is(err, practicesession.ErrIncompleteSession) {
		t.Error("expected error not to match an unrelated kind")
	}

	want := "analysis unavailable: session s1, question 2: upstream timeout"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	if !practicesession.Retryable(err) {
		t.Error("expected analysis failures to be retryable")
	}
	if practicesession.Retryable(practicesession.NewError(practicesession.ErrInvalidConfiguration, "", practicesession.NoQuestion, nil)) {
		t.Error("expected configuration errors not to be retryable")
	}
}
