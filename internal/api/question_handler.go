package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/careerpilot/backend/internal/domain/questionbank"
)

type CatalogQuestion struct {
	Text     string   `json:"text" example:"Explain the difference between a process and a thread."`
	Category string   `json:"category" example:"technical"`
	Tips     []string `json:"tips"`
}

type CatalogResponse struct {
	Version     string            `json:"version" example:"2026.1"`
	Industry    string            `json:"industry" example:"Technology"`
	Position    string            `json:"position" example:"Software Developer"`
	Tier        string            `json:"difficulty_tier" example:"entry"`
	Behavioral  []CatalogQuestion `json:"behavioral"`
	Technical   []CatalogQuestion `json:"technical"`
	Situational []CatalogQuestion `json:"situational"`
}

type catalogQuery struct {
	industry string
	position string
	tier     questionbank.DifficultyTier
}

func (q *catalogQuery) parse(r *http.Request) error {
	q.industry = strings.TrimSpace(r.URL.Query().Get("industry"))
	q.position = strings.TrimSpace(r.URL.Query().Get("position"))
	if q.industry == "" {
		return errors.New("industry is required")
	}
	if q.position == "" {
		return errors.New("position is required")
	}

	q.tier = questionbank.TierEntry
	if t := r.URL.Query().Get("tier"); t != "" {
		tier, err := questionbank.ParseDifficultyTier(t)
		if err != nil {
			return errors.New("invalid tier: must be entry, intermediate, or senior")
		}
		q.tier = tier
	}
	return nil
}

func toCatalogQuestions(ts []questionbank.QuestionTemplate) []CatalogQuestion {
	out := make([]CatalogQuestion, len(ts))
	for i, t := range ts {
		out[i] = CatalogQuestion{Text: t.Text, Category: string(t.Category), Tips: t.Tips}
	}
	return out
}

// listQuestions previews the catalog for a session configuration.
// @Summary      Browse the question catalog
// @Description  Returns the question pools a session for this configuration draws from, in draw order.
// @Tags         Catalog
// @Produce      json
// @Param        industry  query     string  true   "Industry"
// @Param        position  query     string  true   "Position"
// @Param        tier      query     string  false  "Difficulty tier (entry, intermediate, senior)"
// @Success      200       {object}  CatalogResponse
// @Failure      400       {object}  map[string]string
// @Router       /questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	var q catalogQuery
	if err := q.parse(r); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	pools := questionbank.TemplatesFor(q.industry, q.position, q.tier)
	respondJSON(w, http.StatusOK, CatalogResponse{
		Version:     questionbank.Version,
		Industry:    q.industry,
		Position:    q.position,
		Tier:        string(q.tier),
		Behavioral:  toCatalogQuestions(pools.Behavioral),
		Technical:   toCatalogQuestions(pools.Technical),
		Situational: toCatalogQuestions(pools.Situational),
	})
}

// listIndustries returns the industries the catalog supports.
// @Summary      List supported industries
// @Tags         Catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /industries [get]
func (h *Handler) listIndustries(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, questionbank.Industries())
}
