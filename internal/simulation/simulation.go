// simulation/simulation.go
package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
	"github.com/careerpilot/backend/internal/domain/questionbank"
	"github.com/careerpilot/backend/internal/service"
	"github.com/careerpilot/backend/internal/worker"
)

// Candidate is one scripted practice run. Answers are used in order and
// cycled if the session has more questions than answers.
type Candidate struct {
	OwnerID  string
	Position string
	Industry string
	Tier     questionbank.DifficultyTier
	Length   int
	Answers  []string
}

type Outcome struct {
	Candidate Candidate
	SessionID string
	Responses []practicesession.Response
	Feedback  *practicesession.Feedback
	Err       error
}

// Run drives every candidate through a full session, at most workers at a
// time. Outcomes are returned in candidate order.
func Run(ctx context.Context, svc *service.InterviewService, candidates []Candidate, workers int) []Outcome {
	pool := worker.NewPool[Outcome](workers, len(candidates))
	for i, c := range candidates {
		c := c
		pool.Submit(fmt.Sprint(i), func() Outcome {
			return runSession(ctx, svc, c)
		})
	}
	pool.Close()

	byIndex := make(map[string]Outcome, len(candidates))
	for r := range pool.Results() {
		byIndex[r.JobID] = r.Output
	}

	outcomes := make([]Outcome, len(candidates))
	for i := range candidates {
		outcomes[i] = byIndex[fmt.Sprint(i)]
	}
	return outcomes
}

func runSession(ctx context.Context, svc *service.InterviewService, c Candidate) Outcome {
	out := Outcome{Candidate: c}
	if len(c.Answers) == 0 {
		out.Err = errors.New("candidate has no answers")
		return out
	}

	session, err := svc.CreateSessionWithLength(ctx, c.OwnerID, c.Position, c.Industry, c.Tier, c.Length)
	if err != nil {
		out.Err = err
		return out
	}
	out.SessionID = session.ID

	for i := 0; i < session.Len(); i++ {
		r, err := svc.SubmitResponse(ctx, session.ID, c.Answers[i%len(c.Answers)])
		if errors.Is(err, practicesession.ErrFeedbackPending) {
			out.Responses = append(out.Responses, *r)
			break
		}
		if err != nil {
			out.Err = err
			return out
		}
		out.Responses = append(out.Responses, *r)
	}

	// Covers both a pending feedback and an already generated one.
	out.Feedback, out.Err = svc.GenerateFeedback(ctx, session.ID)
	return out
}

// Report prints a short verdict per outcome.
func Report(w io.Writer, outcomes []Outcome) {
	for _, o := range outcomes {
		c := o.Candidate
		fmt.Fprintf(w, "\n=== %s: %s, %s (%s) ===\n", c.OwnerID, c.Position, c.Industry, c.Tier)
		if o.Err != nil {
			fmt.Fprintf(w, "Error: %v\n", o.Err)
			continue
		}
		for _, r := range o.Responses {
			fmt.Fprintf(w, "Q%d [%s] %d/100  %s\n", r.QuestionNumber+1, r.QuestionCategory, r.Score, r.QuestionText)
		}
		fb := o.Feedback
		fmt.Fprintf(w, "Overall: %d/100 (%s)\n", fb.OverallScore, fb.ReadinessLevel)

		categories := make([]string, 0, len(fb.CategoryScores))
		for _, cs := range fb.CategoryScores {
			categories = append(categories, fmt.Sprintf("%s %d", cs.Category, cs.Score))
		}
		sort.Strings(categories)
		fmt.Fprintf(w, "By category: %s\n", strings.Join(categories, ", "))
		if len(fb.AggregatedImprovements) > 0 {
			fmt.Fprintf(w, "Work on: %s\n", strings.Join(fb.AggregatedImprovements, " "))
		}
	}
}

// SampleCandidates returns a small, varied cohort for demo runs.
func SampleCandidates() []Candidate {
	strong := []string{
		"When our release pipeline kept failing at my last job, I was responsible for fixing it. " +
			"I decided to split the build into stages and I built a cache for dependencies. " +
			"As a result, build time dropped from 40 to 12 minutes and failed releases fell by 60%. " +
			"I learned to measure before changing anything.",
		"The situation was a tight deadline with two teams waiting on us. My goal was to unblock both. " +
			"So I worked with each lead to agree on a minimal interface first, and I created mock services. " +
			"The outcome was that both teams shipped on time, and we reused the mocks in 3 later projects.",
	}
	weak := []string{
		"I would probably just try my best.",
		"I am not sure, it depends.",
	}

	return []Candidate{
		{OwnerID: "sim-ada", Position: "Software Developer", Industry: "Technology", Tier: questionbank.TierEntry, Length: 6, Answers: strong},
		{OwnerID: "sim-ben", Position: "Financial Analyst", Industry: "Finance", Tier: questionbank.TierIntermediate, Length: 4, Answers: weak},
		{OwnerID: "sim-cai", Position: "Charge Nurse", Industry: "Healthcare", Tier: questionbank.TierSenior, Length: 3, Answers: append(strong, weak...)},
		{OwnerID: "sim-dee", Position: "Teacher", Industry: "Education", Tier: questionbank.TierEntry, Length: 5, Answers: strong},
	}
}
