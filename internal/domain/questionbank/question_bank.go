package questionbank

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryBehavioral  Category = "behavioral"
	CategoryTechnical   Category = "technical"
	CategorySituational Category = "situational"
)

// Categories lists the categories in the order sessions draw from them.
func Categories() []Category {
	return []Category{CategoryBehavioral, CategoryTechnical, CategorySituational}
}

func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryBehavioral, CategoryTechnical, CategorySituational:
		return c, nil
	}
	return "", fmt.Errorf("unknown question category %q", s)
}

type DifficultyTier string

const (
	TierEntry        DifficultyTier = "entry"
	TierIntermediate DifficultyTier = "intermediate"
	TierSenior       DifficultyTier = "senior"
)

func (t DifficultyTier) Valid() bool {
	switch t {
	case TierEntry, TierIntermediate, TierSenior:
		return true
	}
	return false
}

func ParseDifficultyTier(s string) (DifficultyTier, error) {
	t := DifficultyTier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown difficulty tier %q", s)
	}
	return t, nil
}

// QuestionTemplate is a single catalog question. Templates are values and
// never change once the catalog is built.
type QuestionTemplate struct {
	Text     string
	Category Category
	Tips     []string
}

// Pools holds the per-category question sequences for one
// (industry, position, tier) combination, each in catalog order.
type Pools struct {
	Behavioral  []QuestionTemplate
	Technical   []QuestionTemplate
	Situational []QuestionTemplate
}

// ByCategory returns the pool for the given category.
func (p Pools) ByCategory(c Category) []QuestionTemplate {
	switch c {
	case CategoryBehavioral:
		return p.Behavioral
	case CategoryTechnical:
		return p.Technical
	case CategorySituational:
		return p.Situational
	}
	return nil
}

func (p Pools) Len() int {
	return len(p.Behavioral) + len(p.Technical) + len(p.Situational)
}
