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

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	CreateSession(ctx context.Context, input assessment.CreateSessionInput) (domain.AssessmentSession, error)
	GetSession(ctx context.Context, id uuid.UUID) (domain.AssessmentSession, error)
	ListSessions(ctx context.Context, filter assessment.ListSessionsFilter) ([]domain.AssessmentSession, error)
	CombineSessions(ctx context.Context, input assessment.CombineSessionsInput) (domain.AssessmentSession, error)
}

// SessionHandler serves assessment session endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "sessions")}
}

type createSessionRequest struct {
	Name         string  `json:"name"`
	Assessor     *string `json:"assessor,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type combineSessionsRequest struct {
	SourceSessionIDs []string `json:"sourceSessionIds"`
	Name             string   `json:"name"`
	Assessor         *string  `json:"assessor,omitempty"`
	Organization     *string  `json:"organization,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

type sessionResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Assessor     *string   `json:"assessor,omitempty"`
	Organization *string   `json:"organization,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Create handles POST /api/v1/sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.svc.CreateSession(r.Context(), assessment.CreateSessionInput{
		Name:         req.Name,
		Assessor:     req.Assessor,
		Organization: req.Organization,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// Get handles GET /api/v1/sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	session, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// List handles GET /api/v1/sessions. Supports ?assessor= and ?organization=
// filters; both match exactly.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter assessment.ListSessionsFilter
	if v := r.URL.Query().Get("assessor"); v != "" {
		filter.Assessor = &v
	}
	if v := r.URL.Query().Get("organization"); v != "" {
		filter.Organization = &v
	}

	sessions, err := h.svc.ListSessions(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, toSessionResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Combine handles POST /api/v1/sessions/combine. The new master session
// holds one synthesized entry per catalog topic.
func (h *SessionHandler) Combine(w http.ResponseWriter, r *http.Request) {
	var req combineSessionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sourceIDs := make([]uuid.UUID, 0, len(req.SourceSessionIDs))
	for _, raw := range req.SourceSessionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid source session id: "+raw)
			return
		}
		sourceIDs = append(sourceIDs, id)
	}

	session, err := h.svc.CombineSessions(r.Context(), assessment.CombineSessionsInput{
		SourceSessionIDs: sourceIDs,
		Name:             req.Name,
		Assessor:         req.Assessor,
		Organization:     req.Organization,
		Notes:            req.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

func toSessionResponse(s domain.AssessmentSession) sessionResponse {
	return sessionResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		Assessor:     s.Assessor,
		Organization: s.Organization,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
	}
}
