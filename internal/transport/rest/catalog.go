package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/akarpov/resilience-backend/internal/domain"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	Tree(ctx context.Context) ([]domain.Dimension, error)
	RatingScale(ctx context.Context) ([]domain.RatingScaleLevel, error)
}

// CatalogHandler serves the read-only assessment catalog.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type dimensionResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Themes      []themeResponse `json:"themes"`
}

type themeResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   *string            `json:"description,omitempty"`
	Category      *string            `json:"category,omitempty"`
	Topics        []topicResponse    `json:"topics"`
	LevelGuidance []guidanceResponse `json:"levelGuidance,omitempty"`
}

type guidanceResponse struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

type topicResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Impact       *string               `json:"impact,omitempty"`
	Benefits     *string               `json:"benefits,omitempty"`
	Basic        *string               `json:"basic,omitempty"`
	Advanced     *string               `json:"advanced,omitempty"`
	Evidence     *string               `json:"evidence,omitempty"`
	Regulations  *string               `json:"regulations,omitempty"`
	Explanations []explanationResponse `json:"explanations,omitempty"`
}

type explanationResponse struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

type ratingLevelResponse struct {
	Level       int     `json:"level"`
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`
}

// Tree handles GET /api/v1/catalog.
func (h *CatalogHandler) Tree(w http.ResponseWriter, r *http.Request) {
	dims, err := h.svc.Tree(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]dimensionResponse, 0, len(dims))
	for _, d := range dims {
		resp = append(resp, toDimensionResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

// RatingScale handles GET /api/v1/rating-scale.
func (h *CatalogHandler) RatingScale(w http.ResponseWriter, r *http.Request) {
	scale, err := h.svc.RatingScale(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]ratingLevelResponse, 0, len(scale))
	for _, l := range scale {
		resp = append(resp, ratingLevelResponse{
			Level:       l.Level,
			Label:       l.Label,
			Description: l.Description,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toDimensionResponse(d domain.Dimension) dimensionResponse {
	themes := make([]themeResponse, 0, len(d.Themes))
	for _, t := range d.Themes {
		themes = append(themes, toThemeResponse(t))
	}
	return dimensionResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		Themes:      themes,
	}
}

func toThemeResponse(t domain.Theme) themeResponse {
	topics := make([]topicResponse, 0, len(t.Topics))
	for _, tp := range t.Topics {
		topics = append(topics, toTopicResponse(tp))
	}
	var guidance []guidanceResponse
	for _, g := range t.LevelGuidance {
		guidance = append(guidance, guidanceResponse{Level: g.Level, Text: g.Text})
	}
	return themeResponse{
		ID:            t.ID.String(),
		Name:          t.Name,
		Description:   t.Description,
		Category:      t.Category,
		Topics:        topics,
		LevelGuidance: guidance,
	}
}

func toTopicResponse(t domain.Topic) topicResponse {
	var expl []explanationResponse
	for _, e := range t.Explanations {
		expl = append(expl, explanationResponse{Level: e.Level, Text: e.Text})
	}
	return topicResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		Impact:       t.Impact,
		Benefits:     t.Benefits,
		Basic:        t.Basic,
		Advanced:     t.Advanced,
		Evidence:     t.Evidence,
		Regulations:  t.Regulations,
		Explanations: expl,
	}
}
