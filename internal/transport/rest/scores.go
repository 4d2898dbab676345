package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/service/scoring"
)

// scoringService defines the minimal interface needed by ScoreHandler.
type scoringService interface {
	ThemeAverages(ctx context.Context, sessionID uuid.UUID) ([]scoring.AverageRow, error)
	DimensionAverages(ctx context.Context, sessionID uuid.UUID) ([]scoring.AverageRow, error)
}

// ScoreHandler serves aggregated score endpoints.
type ScoreHandler struct {
	svc scoringService
	log *slog.Logger
}

// NewScoreHandler creates a ScoreHandler.
func NewScoreHandler(svc scoringService, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{svc: svc, log: logger.With("handler", "scores")}
}

// averageRowResponse is one aggregated row. Average is null when no rated
// entry backs the row; coverage is always present, in [0, 1].
type averageRowResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Average  *float64 `json:"average"`
	Coverage float64  `json:"coverage"`
}

type scoresResponse struct {
	Themes     []averageRowResponse `json:"themes"`
	Dimensions []averageRowResponse `json:"dimensions"`
}

// Themes handles GET /api/v1/sessions/{id}/scores/themes.
func (h *ScoreHandler) Themes(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	rows, err := h.svc.ThemeAverages(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAverageRowResponses(rows))
}

// Dimensions handles GET /api/v1/sessions/{id}/scores/dimensions.
func (h *ScoreHandler) Dimensions(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	rows, err := h.svc.DimensionAverages(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAverageRowResponses(rows))
}

// Scores handles GET /api/v1/sessions/{id}/scores. Returns both theme and
// dimension aggregates in one payload.
func (h *ScoreHandler) Scores(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	themes, err := h.svc.ThemeAverages(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	dimensions, err := h.svc.DimensionAverages(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, scoresResponse{
		Themes:     toAverageRowResponses(themes),
		Dimensions: toAverageRowResponses(dimensions),
	})
}

func toAverageRowResponses(rows []scoring.AverageRow) []averageRowResponse {
	resp := make([]averageRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, averageRowResponse{
			ID:       row.ID.String(),
			Name:     row.Name,
			Average:  row.Average,
			Coverage: row.Coverage,
		})
	}
	return resp
}
