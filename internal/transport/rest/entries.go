package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
	"github.com/akarpov/resilience-backend/internal/service/assessment"
)

// entryService defines the minimal interface needed by EntryHandler.
type entryService interface {
	ListEntries(ctx context.Context, sessionID uuid.UUID) ([]domain.AssessmentEntry, error)
	RecordRating(ctx context.Context, sessionID uuid.UUID, input assessment.RecordRatingInput) (domain.AssessmentEntry, error)
}

// EntryHandler serves assessment entry endpoints.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type recordRatingRequest struct {
	CurrentMaturity *int     `json:"currentMaturity,omitempty"`
	CurrentIsNA     bool     `json:"currentIsNa,omitempty"`
	DesiredMaturity *int     `json:"desiredMaturity,omitempty"`
	DesiredIsNA     bool     `json:"desiredIsNa,omitempty"`
	ComputedScore   *float64 `json:"computedScore,omitempty"`
	Comment         *string  `json:"comment,omitempty"`
	EvidenceLinks   []string `json:"evidenceLinks,omitempty"`
	ProgressState   string   `json:"progressState,omitempty"`
}

type entryResponse struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"sessionId"`
	TopicID         string    `json:"topicId"`
	CurrentMaturity *int      `json:"currentMaturity"`
	CurrentIsNA     bool      `json:"currentIsNa"`
	DesiredMaturity *int      `json:"desiredMaturity"`
	DesiredIsNA     bool      `json:"desiredIsNa"`
	ComputedScore   *float64  `json:"computedScore"`
	Comment         *string   `json:"comment,omitempty"`
	EvidenceLinks   []string  `json:"evidenceLinks,omitempty"`
	ProgressState   string    `json:"progressState"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// List handles GET /api/v1/sessions/{id}/entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Upsert handles PUT /api/v1/sessions/{id}/entries/{topicID}. The request
// replaces any previous rating of the topic wholesale.
func (h *EntryHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}
	topicID, err := uuid.Parse(r.PathValue("topicID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req recordRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	progress := domain.ProgressState(req.ProgressState)
	if req.ProgressState == "" {
		progress = domain.ProgressNotStarted
	}

	entry, err := h.svc.RecordRating(r.Context(), sessionID, assessment.RecordRatingInput{
		TopicID:         topicID,
		CurrentMaturity: req.CurrentMaturity,
		CurrentIsNA:     req.CurrentIsNA,
		DesiredMaturity: req.DesiredMaturity,
		DesiredIsNA:     req.DesiredIsNA,
		ComputedScore:   req.ComputedScore,
		Comment:         req.Comment,
		EvidenceLinks:   req.EvidenceLinks,
		ProgressState:   progress,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func toEntryResponse(e domain.AssessmentEntry) entryResponse {
	var computed *float64
	if e.ComputedScore != nil {
		f := e.ComputedScore.Float64()
		computed = &f
	}
	return entryResponse{
		ID:              e.ID.String(),
		SessionID:       e.SessionID.String(),
		TopicID:         e.TopicID.String(),
		CurrentMaturity: e.CurrentMaturity,
		CurrentIsNA:     e.CurrentIsNA,
		DesiredMaturity: e.DesiredMaturity,
		DesiredIsNA:     e.DesiredIsNA,
		ComputedScore:   computed,
		Comment:         e.Comment,
		EvidenceLinks:   e.EvidenceLinks,
		ProgressState:   e.ProgressState.String(),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
