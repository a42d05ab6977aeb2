package questionbank_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/careerpilot/backend/internal/domain/questionbank"
)

func TestTemplatesFor_KnownIndustry(t *testing.T) {
	pools := questionbank.TemplatesFor("Technology", "Software Developer", questionbank.TierEntry)

	if len(pools.Behavioral) == 0 || len(pools.Technical) == 0 || len(pools.Situational) == 0 {
		t.Fatalf("expected non-empty pools, got %d/%d/%d",
			len(pools.Behavioral), len(pools.Technical), len(pools.Situational))
	}

	for _, c := range questionbank.Categories() {
		for _, q := range pools.ByCategory(c) {
			if q.Category != c {
				t.Errorf("template %q in %s pool has category %s", q.Text, c, q.Category)
			}
			if len(q.Tips) == 0 {
				t.Errorf("template %q has no tips", q.Text)
			}
		}
	}
}

func TestTemplatesFor_SubstitutesPlaceholders(t *testing.T) {
	pools := questionbank.TemplatesFor("technology", "Software Developer", questionbank.TierEntry)

	if !strings.Contains(pools.Behavioral[0].Text, "Software Developer") {
		t.Errorf("expected position in %q", pools.Behavioral[0].Text)
	}

	for _, c := range questionbank.Categories() {
		for _, q := range pools.ByCategory(c) {
			if strings.Contains(q.Text, "{") {
				t.Errorf("unresolved placeholder in %q", q.Text)
			}
		}
	}
}

func TestTemplatesFor_Deterministic(t *testing.T) {
	a := questionbank.TemplatesFor("Finance", "Analyst", questionbank.TierSenior)
	b := questionbank.TemplatesFor("Finance", "Analyst", questionbank.TierSenior)

	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical pools for identical parameters")
	}
}

func TestTemplatesFor_IndustryLookupIgnoresCaseAndSpace(t *testing.T) {
	a := questionbank.TemplatesFor("  HEALTHCARE ", "Nurse", questionbank.TierIntermediate)
	b := questionbank.TemplatesFor("Healthcare", "Nurse", questionbank.TierIntermediate)

	if !reflect.DeepEqual(a, b) {
		t.Error("expected industry lookup to ignore case and surrounding space")
	}
}

func TestTemplatesFor_UnknownCombination(t *testing.T) {
	tests := []struct {
		name     string
		industry string
		tier     questionbank.DifficultyTier
	}{
		{"unknown industry", "Underwater Basket Weaving", questionbank.TierEntry},
		{"unknown tier", "Technology", questionbank.DifficultyTier("principal")},
		{"empty industry", "", questionbank.TierEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pools := questionbank.TemplatesFor(tt.industry, "Developer", tt.tier)
			if pools.Len() != 0 {
				t.Errorf("expected empty pools, got %d templates", pools.Len())
			}
		})
	}
}

func TestTemplatesFor_ReturnsCopies(t *testing.T) {
	a := questionbank.TemplatesFor("Technology", "Developer", questionbank.TierEntry)
	a.Behavioral[0].Tips[0] = "mutated"

	b := questionbank.TemplatesFor("Technology", "Developer", questionbank.TierEntry)
	if b.Behavioral[0].Tips[0] == "mutated" {
		t.Error("expected catalog to be unaffected by caller mutation")
	}
}

func TestEveryIndustryCoversEveryTier(t *testing.T) {
	tiers := []questionbank.DifficultyTier{
		questionbank.TierEntry, questionbank.TierIntermediate, questionbank.TierSenior,
	}
	for _, industry := range questionbank.Industries() {
		for _, tier := range tiers {
			pools := questionbank.TemplatesFor(industry, "Candidate", tier)
			// A default six-question session takes two from each pool.
			for _, c := range questionbank.Categories() {
				if n := len(pools.ByCategory(c)); n < 2 {
					t.Errorf("%s/%s: %s pool has %d templates", industry, tier, c, n)
				}
			}
		}
	}
}

func TestParseDifficultyTier(t *testing.T) {
	tests := []struct {
		in      string
		want    questionbank.DifficultyTier
		wantErr bool
	}{
		{"entry", questionbank.TierEntry, false},
		{" Senior ", questionbank.TierSenior, false},
		{"INTERMEDIATE", questionbank.TierIntermediate, false},
		{"expert", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := questionbank.ParseDifficultyTier(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficultyTier(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficultyTier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := questionbank.ParseCategory("Technical"); err != nil || c != questionbank.CategoryTechnical {
		t.Errorf("expected technical, got %q (%v)", c, err)
	}
	if _, err := questionbank.ParseCategory("trivia"); err == nil {
		t.Error("expected error for unknown category")
	}
}
