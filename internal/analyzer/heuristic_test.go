package analyzer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/careerpilot/backend/internal/analyzer"
	"github.com/careerpilot/backend/internal/domain/questionbank"
)

func TestHeuristicAnalyzer_ScoresWithinRange(t *testing.T) {
	answers := []string{
		"Yes.",
		"When our release failed at my last job, I had to find the cause. I decided to bisect the deploy. As a result we reduced downtime by 40% and I learned to add canaries.",
		"I think it went fine overall and the team was happy with how things turned out in the end.",
	}

	for _, text := range answers {
		a, err := analyzer.HeuristicAnalyzer{}.Analyze(context.Background(), analyzer.Request{
			Question:     "Tell me about a failure.",
			Category:     questionbank.CategoryBehavioral,
			ResponseText: text,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := a.Validate(); err != nil {
			t.Errorf("%q: invalid assessment: %v", text, err)
		}
		if a.Strengths == nil || a.Improvements == nil || a.KeyPointsCovered == nil || a.KeyPointsMissed == nil {
			t.Errorf("%q: expected non-nil lists", text)
		}
	}
}

func TestHeuristicAnalyzer_RewardsStructure(t *testing.T) {
	weak, _ := analyzer.HeuristicAnalyzer{}.Analyze(context.Background(), analyzer.Request{
		Category:     questionbank.CategoryBehavioral,
		ResponseText: "I am a team player.",
	})
	strong, _ := analyzer.HeuristicAnalyzer{}.Analyze(context.Background(), analyzer.Request{
		Category: questionbank.CategoryBehavioral,
		ResponseText: "When our team missed two deadlines in a row, I was responsible for the release plan. " +
			"I decided to split the work into weekly milestones and I led a short daily check-in. " +
			"As a result we shipped the next three releases on time and reduced overtime by 30%.",
	})

	if strong.Score <= weak.Score {
		t.Errorf("expected structured answer to score higher: strong=%d weak=%d", strong.Score, weak.Score)
	}
	if len(strong.KeyPointsCovered) < 3 {
		t.Errorf("expected STAR coverage, got %v", strong.KeyPointsCovered)
	}
}

func TestHeuristicAnalyzer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analyzer.HeuristicAnalyzer{}.Analyze(ctx, analyzer.Request{ResponseText: "anything"})
	var ae *analyzer.AnalysisError
	if !errors.As(err, &ae) || !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancelled AnalysisError, got %v", err)
	}
}
