package questionbank

import (
	"sort"
	"strings"
)

// Version identifies the catalog revision. It is copied onto every session so
// a stored question sequence can be traced back to the text that produced it.
const Version = "2026.1"

type template struct {
	text string
	tips []string
}

// ============================================================================
// Catalog data
//
// Behavioral and situational questions apply to every supported industry;
// technical questions are industry specific. {position} and {industry} are
// substituted when templates are resolved.
// ============================================================================

var behavioral = map[DifficultyTier][]template{
	TierEntry: {
		{"Tell me about yourself and why you are interested in a {position} role.", []string{
			"Keep it to two minutes: present, past, future.",
			"Connect your background to the role.",
		}},
		{"Describe a time you worked in a team to reach a shared goal.", []string{
			"Use the STAR method: situation, task, action, result.",
			"Make your own contribution explicit.",
		}},
		{"Tell me about a mistake you made and what you learned from it.", []string{
			"Pick a real but recoverable mistake.",
			"Spend most of the answer on what changed afterwards.",
		}},
	},
	TierIntermediate: {
		{"Describe a project in {industry} you are proud of and your role in it.", []string{
			"Quantify the outcome where you can.",
			"Explain the trade-offs you made.",
		}},
		{"Tell me about a time you disagreed with a colleague. How did you resolve it?", []string{
			"Show that you listened before arguing.",
			"End with the working relationship afterwards.",
		}},
		{"Describe a situation where you had to learn something new quickly.", []string{
			"Name the resources you used.",
			"Show how you verified your understanding.",
		}},
	},
	TierSenior: {
		{"Tell me about a time you led a team through a significant change.", []string{
			"Describe how you brought people along, not just the plan.",
			"Include what you would do differently.",
		}},
		{"Describe a high-stakes decision you made with incomplete information.", []string{
			"Explain how you bounded the risk.",
			"Say how you checked the decision afterwards.",
		}},
		{"How have you developed the people who report to you?", []string{
			"Give one concrete growth story.",
			"Mention how you give feedback.",
		}},
	},
}

var situational = map[DifficultyTier][]template{
	TierEntry: {
		{"You are given a task with an unclear deadline. What do you do?", []string{
			"Clarify expectations early.",
			"Show how you would prioritize.",
		}},
		{"A customer or colleague is unhappy with your work. How do you respond?", []string{
			"Acknowledge before explaining.",
			"Offer a concrete next step.",
		}},
	},
	TierIntermediate: {
		{"Two stakeholders ask for conflicting priorities in the same week. How do you handle it?", []string{
			"Make the trade-off visible to both.",
			"Escalate with options, not problems.",
		}},
		{"You discover a serious problem in work that has already shipped. What are your next steps?", []string{
			"Contain first, then fix, then explain.",
			"Mention how you would prevent a repeat.",
		}},
	},
	TierSenior: {
		{"Your organization must cut a third of its roadmap. How do you decide what goes?", []string{
			"State the criteria you would use.",
			"Explain how you communicate the outcome.",
		}},
		{"A top performer on your team is damaging team morale. What do you do?", []string{
			"Separate results from behaviour.",
			"Describe a direct conversation and a follow-up.",
		}},
	},
}

var technical = map[string]map[DifficultyTier][]template{
	"technology": {
		TierEntry: {
			{"Explain the difference between a process and a thread.", []string{
				"Cover memory sharing and scheduling.",
				"Give an example of when you would use each.",
			}},
			{"How would you find and fix a bug that only appears in production as a {position}?", []string{
				"Talk about logs, metrics and reproduction.",
				"Mention how you would verify the fix.",
			}},
		},
		TierIntermediate: {
			{"How would you design a REST API for a to-do application?", []string{
				"Cover resources, verbs and status codes.",
				"Mention pagination and versioning.",
			}},
			{"Explain how you would improve the performance of a slow database query.", []string{
				"Start from measurement.",
				"Discuss indexes and query plans.",
			}},
		},
		TierSenior: {
			{"Design a URL shortener that serves a billion redirects per day.", []string{
				"Estimate load before choosing components.",
				"Discuss caching, storage and failure modes.",
			}},
			{"How do you decide between a monolith and microservices?", []string{
				"Tie the decision to team structure and scale.",
				"Name the operational costs.",
			}},
		},
	},
	"healthcare": {
		TierEntry: {
			{"How do you protect patient privacy in your day-to-day work?", []string{
				"Mention relevant regulations.",
				"Give a concrete habit you follow.",
			}},
			{"Walk me through how you would prioritize several urgent requests as a {position}.", []string{
				"Explain your triage criteria.",
				"Show how you communicate delays.",
			}},
		},
		TierIntermediate: {
			{"How would you improve the accuracy of patient records in a busy department?", []string{
				"Focus on process before tools.",
				"Describe how you would measure accuracy.",
			}},
			{"Describe how clinical guidelines influence your decisions.", []string{
				"Balance guidelines against individual cases.",
				"Mention how you stay current.",
			}},
		},
		TierSenior: {
			{"How would you lead the rollout of a new clinical system across multiple sites?", []string{
				"Cover training, pilots and feedback loops.",
				"Address patient safety during transition.",
			}},
			{"How do you balance cost control with quality of care?", []string{
				"Use outcome data to justify choices.",
				"Involve clinicians in the decision.",
			}},
		},
	},
	"finance": {
		TierEntry: {
			{"Walk me through the three main financial statements and how they connect.", []string{
				"Trace net income through each statement.",
				"Keep definitions precise.",
			}},
			{"How would you check a spreadsheet model for errors as a {position}?", []string{
				"Mention reconciliation and sanity checks.",
				"Describe how you document assumptions.",
			}},
		},
		TierIntermediate: {
			{"How would you value a company with negative earnings?", []string{
				"Discuss revenue multiples and DCF.",
				"State your key assumptions.",
			}},
			{"Explain how rising interest rates affect a company's balance sheet.", []string{
				"Cover debt, assets and discount rates.",
				"Give a concrete example.",
			}},
		},
		TierSenior: {
			{"How would you build a risk framework for a new lending product?", []string{
				"Cover credit, market and operational risk.",
				"Explain the controls and reporting.",
			}},
			{"Describe how you would present a difficult forecast to the board.", []string{
				"Lead with the conclusion.",
				"Show scenarios, not a single number.",
			}},
		},
	},
	"marketing": {
		TierEntry: {
			{"How would you measure the success of a social media campaign?", []string{
				"Separate vanity metrics from outcomes.",
				"Tie metrics to a business goal.",
			}},
			{"Describe a brand you admire. What would you, as a {position}, take from its marketing?", []string{
				"Be specific about channels and audience.",
				"Explain what you would borrow.",
			}},
		},
		TierIntermediate: {
			{"How would you plan a product launch with a limited budget?", []string{
				"Prioritize channels by expected return.",
				"Describe how you would test cheaply first.",
			}},
			{"Explain how you would set up an A/B test for a landing page.", []string{
				"Define the hypothesis and metric first.",
				"Mention sample size and duration.",
			}},
		},
		TierSenior: {
			{"How would you reposition a brand that is losing market share?", []string{
				"Start from customer research.",
				"Describe how you would align the organization.",
			}},
			{"How do you decide on marketing budget allocation across channels?", []string{
				"Use attribution data with its limits in mind.",
				"Keep a portion for experiments.",
			}},
		},
	},
	"education": {
		TierEntry: {
			{"How do you adapt a lesson for students with different learning needs?", []string{
				"Give a concrete example of differentiation.",
				"Mention how you check understanding.",
			}},
			{"How would you handle a disruptive student in your first week as a {position}?", []string{
				"Focus on relationship and clear expectations.",
				"Describe a follow-up with the student.",
			}},
		},
		TierIntermediate: {
			{"How do you use assessment data to plan instruction?", []string{
				"Distinguish formative from summative assessment.",
				"Show a change you made based on data.",
			}},
			{"Describe how you would design a unit from scratch.", []string{
				"Start from learning outcomes.",
				"Explain how assessments align with them.",
			}},
		},
		TierSenior: {
			{"How would you lead curriculum change across a department?", []string{
				"Involve teachers early.",
				"Plan for support and evaluation.",
			}},
			{"How do you evaluate and support underperforming staff?", []string{
				"Use evidence, not impressions.",
				"Describe the support before consequences.",
			}},
		},
	},
}

// industryNames maps the lookup key to the display name.
var industryNames = map[string]string{
	"technology": "Technology",
	"healthcare": "Healthcare",
	"finance":    "Finance",
	"marketing":  "Marketing",
	"education":  "Education",
}

// Industries returns the display names of supported industries, sorted.
func Industries() []string {
	names := make([]string, 0, len(industryNames))
	for _, n := range industryNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// TemplatesFor returns the question pools for a session. An unknown industry
// or tier yields empty pools; callers decide what an empty pool means.
func TemplatesFor(industry, position string, tier DifficultyTier) Pools {
	key := strings.ToLower(strings.TrimSpace(industry))
	tech, ok := technical[key]
	if !ok || !tier.Valid() {
		return Pools{}
	}

	r := strings.NewReplacer(
		"{position}", strings.TrimSpace(position),
		"{industry}", industryNames[key],
	)

	return Pools{
		Behavioral:  resolve(behavioral[tier], CategoryBehavioral, r),
		Technical:   resolve(tech[tier], CategoryTechnical, r),
		Situational: resolve(situational[tier], CategorySituational, r),
	}
}

func resolve(ts []template, c Category, r *strings.Replacer) []QuestionTemplate {
	out := make([]QuestionTemplate, len(ts))
	for i, t := range ts {
		tips := make([]string, len(t.tips))
		copy(tips, t.tips)
		out[i] = QuestionTemplate{
			Text:     r.Replace(t.text),
			Category: c,
			Tips:     tips,
		}
	}
	return out
}
