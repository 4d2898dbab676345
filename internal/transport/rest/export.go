package rest

import (
	"context"
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

// exportCatalog provides the catalog tree for export row ordering.
type exportCatalog interface {
	Tree(ctx context.Context) ([]domain.Dimension, error)
}

// exportAssessment provides the session and its entries.
type exportAssessment interface {
	GetSession(ctx context.Context, id uuid.UUID) (domain.AssessmentSession, error)
	ListEntries(ctx context.Context, sessionID uuid.UUID) ([]domain.AssessmentEntry, error)
}

// ExportHandler serves CSV exports of a session.
type ExportHandler struct {
	catalog    exportCatalog
	assessment exportAssessment
	log        *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(catalog exportCatalog, assessment exportAssessment, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		catalog:    catalog,
		assessment: assessment,
		log:        logger.With("handler", "export"),
	}
}

var exportHeader = []string{
	"dimension",
	"theme",
	"topic",
	"current_maturity",
	"current_is_na",
	"desired_maturity",
	"desired_is_na",
	"computed_score",
	"progress_state",
	"comment",
	"evidence_links",
}

// Export handles GET /api/v1/sessions/{id}/export. Rows follow catalog
// order; topics without a rating are emitted with empty score cells.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	session, err := h.assessment.GetSession(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	dims, err := h.catalog.Tree(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	entries, err := h.assessment.ListEntries(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	byTopic := make(map[uuid.UUID]domain.AssessmentEntry, len(entries))
	for _, e := range entries {
		byTopic[e.TopicID] = e
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename(session)+`"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	cw.Write(exportHeader) //nolint:errcheck
	for _, d := range dims {
		for _, t := range d.Themes {
			for _, tp := range t.Topics {
				entry, rated := byTopic[tp.ID]
				cw.Write(exportRow(d.Name, t.Name, tp.Name, entry, rated)) //nolint:errcheck
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.log.ErrorContext(r.Context(), "csv export failed", slog.String("error", err.Error()))
	}
}

func exportRow(dimension, theme, topic string, e domain.AssessmentEntry, rated bool) []string {
	row := []string{dimension, theme, topic, "", "", "", "", "", "", "", ""}
	if !rated {
		return row
	}
	row[3] = formatIntPtr(e.CurrentMaturity)
	row[4] = strconv.FormatBool(e.CurrentIsNA)
	row[5] = formatIntPtr(e.DesiredMaturity)
	row[6] = strconv.FormatBool(e.DesiredIsNA)
	if e.ComputedScore != nil {
		row[7] = e.ComputedScore.String()
	}
	row[8] = e.ProgressState.String()
	if e.Comment != nil {
		row[9] = *e.Comment
	}
	row[10] = strings.Join(e.EvidenceLinks, "\n")
	return row
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// exportFilename derives a safe attachment name from the session name.
func exportFilename(s domain.AssessmentSession) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		}
		return -1
	}, s.Name)
	if name == "" {
		name = s.ID.String()
	}
	return name + ".csv"
}
