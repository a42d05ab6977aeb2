package practicesession_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
	"github.com/careerpilot/backend/internal/domain/questionbank"
)

// answeredSession builds a session with one question per score and a scored
// response for each, as if every question had been submitted.
func answeredSession(t *testing.T, scores ...int) (*practicesession.Session, []practicesession.Response) {
	t.Helper()

	n := len(scores)
	session, err := practicesession.NewWithConfig("user-1", makePools(n, n, n), config(n))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	responses := make([]practicesession.Response, 0, n)
	for i, score := range scores {
		r, err := practicesession.NewResponse(session, "answer", practicesession.Assessment{
			Score:              score,
			CommunicationScore: score,
			ContentScore:       score,
			StructureScore:     score,
		})
		if err != nil {
			t.Fatalf("response %d: %v", i, err)
		}
		responses = append(responses, *r)
		if err := session.Advance(i); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	return session, responses
}

var generatedAt = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func TestAggregate_RoundingLaw(t *testing.T) {
	session, responses := answeredSession(t, 80, 70, 90, 100, 60, 85)

	fb, err := practicesession.Aggregate(session, responses, practicesession.DefaultReadinessPolicy(), generatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// mean 80.83
	if fb.OverallScore != 81 {
		t.Errorf("expected overall score 81, got %d", fb.OverallScore)
	}
	if fb.ReadinessLevel != practicesession.ReadinessReady {
		t.Errorf("expected ready, got %s", fb.ReadinessLevel)
	}
	if !fb.GeneratedAt.Equal(generatedAt) {
		t.Errorf("expected generatedAt %v, got %v", generatedAt, fb.GeneratedAt)
	}
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		scores []int
		want   int
	}{
		{[]int{80, 81}, 81},        // 80.5
		{[]int{90, 70, 65}, 75},    // 75.0
		{[]int{0, 1}, 1},           // 0.5
		{[]int{49, 50, 50}, 50},    // 49.67
		{[]int{100, 100, 99}, 100}, // 99.67
		{[]int{33, 33, 34}, 33},    // 33.33
	}

	for _, tt := range tests {
		session, responses := answeredSession(t, tt.scores...)
		fb, err := practicesession.Aggregate(session, responses, practicesession.DefaultReadinessPolicy(), generatedAt)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.scores, err)
		}
		if fb.OverallScore != tt.want {
			t.Errorf("%v: expected %d, got %d", tt.scores, tt.want, fb.OverallScore)
		}
	}
}

func TestClassify_ThresholdBoundaries(t *testing.T) {
	policy := practicesession.DefaultReadinessPolicy()

	tests := []struct {
		score int
		want  practicesession.ReadinessLevel
	}{
		{100, practicesession.ReadinessWellPrepared},
		{85, practicesession.ReadinessWellPrepared},
		{84, practicesession.ReadinessReady},
		{70, practicesession.ReadinessReady},
		{69, practicesession.ReadinessDeveloping},
		{50, practicesession.ReadinessDeveloping},
		{49, practicesession.ReadinessNeedsWork},
		{0, practicesession.ReadinessNeedsWork},
	}

	for _, tt := range tests {
		if got := policy.Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestReadinessPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  practicesession.ReadinessPolicy
		wantErr bool
	}{
		{"default", practicesession.DefaultReadinessPolicy(), false},
		{"custom", practicesession.ReadinessPolicy{WellPrepared: 90, Ready: 75, Developing: 40}, false},
		{"not descending", practicesession.ReadinessPolicy{WellPrepared: 70, Ready: 70, Developing: 50}, true},
		{"above 100", practicesession.ReadinessPolicy{WellPrepared: 101, Ready: 70, Developing: 50}, true},
		{"negative", practicesession.ReadinessPolicy{WellPrepared: 85, Ready: 70, Developing: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.policy.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAggregate_DeduplicatesInQuestionOrder(t *testing.T) {
	session, responses := answeredSession(t, 80, 70, 90)
	responses[0].Strengths = []string{"clear structure", "good examples"}
	responses[1].Strengths = []string{"good examples", "concise"}
	responses[2].Strengths = []string{"clear structure", "Concise"}
	responses[0].Improvements = []string{"quantify results"}
	responses[1].Improvements = []string{"quantify results", "slow down"}
	responses[2].Improvements = nil

	// Reverse to check ordering comes from question numbers, not input order.
	reversed := []practicesession.Response{responses[2], responses[1], responses[0]}

	fb, err := practicesession.Aggregate(session, reversed, practicesession.DefaultReadinessPolicy(), generatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStrengths := []string{"clear structure", "good examples", "concise", "Concise"}
	if !reflect.DeepEqual(fb.AggregatedStrengths, wantStrengths) {
		t.Errorf("expected strengths %v, got %v", wantStrengths, fb.AggregatedStrengths)
	}

	wantImprovements := []string{"quantify results", "slow down"}
	if !reflect.DeepEqual(fb.AggregatedImprovements, wantImprovements) {
		t.Errorf("expected improvements %v, got %v", wantImprovements, fb.AggregatedImprovements)
	}
}

func TestAggregate_CategoryScores(t *testing.T) {
	// Round-robin gives behavioral, technical, situational, behavioral.
	session, responses := answeredSession(t, 90, 60, 70, 81)

	fb, err := practicesession.Aggregate(session, responses, practicesession.DefaultReadinessPolicy(), generatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []practicesession.CategoryScore{
		{Category: questionbank.CategoryBehavioral, Score: 86, Answered: 2},
		{Category: questionbank.CategoryTechnical, Score: 60, Answered: 1},
		{Category: questionbank.CategorySituational, Score: 70, Answered: 1},
	}
	if !reflect.DeepEqual(fb.CategoryScores, want) {
		t.Errorf("expected %+v, got %+v", want, fb.CategoryScores)
	}
	if fb.AverageCommunication != 75 || fb.AverageContent != 75 || fb.AverageStructure != 75 {
		t.Errorf("expected sub-score averages of 75, got %d/%d/%d",
			fb.AverageCommunication, fb.AverageContent, fb.AverageStructure)
	}
}

func TestAggregate_IncompleteSession(t *testing.T) {
	session, responses := answeredSession(t, 80, 70, 90)

	t.Run("missing response", func(t *testing.T) {
		_, err := practicesession.Aggregate(session, responses[:2], practicesession.DefaultReadinessPolicy(), generatedAt)
		if !errors.Is(err, practicesession.ErrIncompleteSession) {
			t.Errorf("expected ErrIncompleteSession, got %v", err)
		}
	})

	t.Run("duplicate question number", func(t *testing.T) {
		dup := []practicesession.Response{responses[0], responses[1], responses[1]}
		_, err := practicesession.Aggregate(session, dup, practicesession.DefaultReadinessPolicy(), generatedAt)
		if !errors.Is(err, practicesession.ErrIncompleteSession) {
			t.Errorf("expected ErrIncompleteSession, got %v", err)
		}
	})

	t.Run("cursor not at end", func(t *testing.T) {
		fresh, _ := practicesession.NewWithConfig("user-1", makePools(1, 1, 1), config(3))
		_, err := practicesession.Aggregate(fresh, nil, practicesession.DefaultReadinessPolicy(), generatedAt)
		if !errors.Is(err, practicesession.ErrIncompleteSession) {
			t.Errorf("expected ErrIncompleteSession, got %v", err)
		}
	})
}

func TestAggregate_NoResponses(t *testing.T) {
	empty, err := practicesession.NewWithConfig("user-1", questionbank.Pools{}, config(6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = practicesession.Aggregate(empty, nil, practicesession.DefaultReadinessPolicy(), generatedAt)
	if !errors.Is(err, practicesession.ErrNoResponsesToAggregate) {
		t.Errorf("expected ErrNoResponsesToAggregate, got %v", err)
	}
}

func TestAssessment_Validate(t *testing.T) {
	valid := practicesession.Assessment{Score: 100, CommunicationScore: 0, ContentScore: 50, StructureScore: 75}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	invalid := practicesession.Assessment{Score: 101, StructureScore: -1}
	if err := invalid.Validate(); err == nil {
		t.Error("expected error for out-of-range scores")
	}
}

func TestNewResponse_UsesCurrentQuestion(t *testing.T) {
	session, _ := practicesession.NewWithConfig("user-1", makePools(2, 2, 2), config(6))
	_ = session.Advance(0)

	r, err := practicesession.NewResponse(session, "my answer", practicesession.Assessment{Score: 70})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.QuestionNumber != 1 {
		t.Errorf("expected question number 1, got %d", r.QuestionNumber)
	}
	if r.QuestionText != session.Questions[1].Text || r.QuestionCategory != questionbank.CategoryTechnical {
		t.Errorf("expected second question, got %q (%s)", r.QuestionText, r.QuestionCategory)
	}
	if r.SessionID != session.ID || r.ResponseText != "my answer" || r.Score != 70 {
		t.Errorf("unexpected response: %+v", r)
	}
}
