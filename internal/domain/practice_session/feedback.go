package practicesession

import (
	"fmt"
	"sort"
	"time"

	"github.com/careerpilot/backend/internal/domain/questionbank"
)

type ReadinessLevel string

const (
	ReadinessWellPrepared ReadinessLevel = "well_prepared"
	ReadinessReady        ReadinessLevel = "ready"
	ReadinessDeveloping   ReadinessLevel = "developing"
	ReadinessNeedsWork    ReadinessLevel = "needs_work"
)

// ReadinessPolicy holds the minimum overall score for each readiness level.
// Anything below Developing is ReadinessNeedsWork.
type ReadinessPolicy struct {
	WellPrepared int
	Ready        int
	Developing   int
}

func DefaultReadinessPolicy() ReadinessPolicy {
	return ReadinessPolicy{
		WellPrepared: 85,
		Ready:        70,
		Developing:   50,
	}
}

func (p ReadinessPolicy) Validate() error {
	if p.WellPrepared > 100 || p.Developing < 0 {
		return fmt.Errorf("readiness thresholds must be within [0,100]: %+v", p)
	}
	if !(p.WellPrepared > p.Ready && p.Ready > p.Developing) {
		return fmt.Errorf("readiness thresholds must be strictly descending: %+v", p)
	}
	return nil
}

// Classify maps an overall score to a readiness level, highest threshold first.
func (p ReadinessPolicy) Classify(score int) ReadinessLevel {
	switch {
	case score >= p.WellPrepared:
		return ReadinessWellPrepared
	case score >= p.Ready:
		return ReadinessReady
	case score >= p.Developing:
		return ReadinessDeveloping
	default:
		return ReadinessNeedsWork
	}
}

// CategoryScore is the rounded mean score of the answers in one category.
type CategoryScore struct {
	Category questionbank.Category
	Score    int
	Answered int
}

// Feedback is the session-level verdict. There is at most one per session
// and it is never recomputed once stored.
type Feedback struct {
	SessionID              string
	OverallScore           int
	ReadinessLevel         ReadinessLevel
	AggregatedStrengths    []string
	AggregatedImprovements []string
	CategoryScores         []CategoryScore
	AverageCommunication   int
	AverageContent         int
	AverageStructure       int
	GeneratedAt            time.Time
}

// Aggregate rolls the session's responses up into a Feedback.
//
// Every question must have exactly one response. Responses may be passed in
// any order; they are processed by ascending question number.
func Aggregate(s *Session, responses []Response, policy ReadinessPolicy, now time.Time) (*Feedback, error) {
	if s.Len() == 0 {
		return nil, NewError(ErrNoResponsesToAggregate, s.ID, NoQuestion, nil)
	}
	if !s.AllAnswered() || len(responses) != s.Len() {
		return nil, NewError(ErrIncompleteSession, s.ID, s.CurrentQuestionIndex,
			fmt.Errorf("%d of %d questions answered", len(responses), s.Len()))
	}

	ordered := make([]Response, len(responses))
	copy(ordered, responses)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].QuestionNumber < ordered[j].QuestionNumber
	})
	for i, r := range ordered {
		if r.QuestionNumber != i {
			return nil, NewError(ErrIncompleteSession, s.ID, i,
				fmt.Errorf("no response for question %d", i))
		}
	}

	var (
		scores        = make([]int, len(ordered))
		communication = make([]int, len(ordered))
		content       = make([]int, len(ordered))
		structure     = make([]int, len(ordered))
		strengths     []string
		improvements  []string
	)
	byCategory := make(map[questionbank.Category][]int)
	for i, r := range ordered {
		scores[i] = r.Score
		communication[i] = r.CommunicationScore
		content[i] = r.ContentScore
		structure[i] = r.StructureScore
		strengths = append(strengths, r.Strengths...)
		improvements = append(improvements, r.Improvements...)
		byCategory[r.QuestionCategory] = append(byCategory[r.QuestionCategory], r.Score)
	}

	var categoryScores []CategoryScore
	for _, c := range questionbank.Categories() {
		if cs := byCategory[c]; len(cs) > 0 {
			categoryScores = append(categoryScores, CategoryScore{
				Category: c,
				Score:    roundedMean(cs),
				Answered: len(cs),
			})
		}
	}

	overall := roundedMean(scores)
	return &Feedback{
		SessionID:              s.ID,
		OverallScore:           overall,
		ReadinessLevel:         policy.Classify(overall),
		AggregatedStrengths:    dedupe(strengths),
		AggregatedImprovements: dedupe(improvements),
		CategoryScores:         categoryScores,
		AverageCommunication:   roundedMean(communication),
		AverageContent:         roundedMean(content),
		AverageStructure:       roundedMean(structure),
		GeneratedAt:            now,
	}, nil
}

// roundedMean returns the mean of non-negative values rounded half up,
// computed in integers so x.5 never lands on the wrong side.
func roundedMean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	n := len(values)
	return (2*sum + n) / (2 * n)
}

// dedupe keeps the first occurrence of each exact string.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
