package assessment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

// CreateSessionInput holds the parameters for creating a session.
type CreateSessionInput struct {
	Name         string
	Assessor     *string
	Organization *string
	Notes        *string
}

// Validate checks all fields and collects all errors.
func (i CreateSessionInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if i.Assessor != nil && len(strings.TrimSpace(*i.Assessor)) > 255 {
		errs = append(errs, domain.FieldError{Field: "assessor", Message: "max 255 characters"})
	}
	if i.Organization != nil && len(strings.TrimSpace(*i.Organization)) > 255 {
		errs = append(errs, domain.FieldError{Field: "organization", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RecordRatingInput holds one rating of one topic within a session.
// The rating replaces any previous rating of the same topic wholesale.
type RecordRatingInput struct {
	TopicID         uuid.UUID
	CurrentMaturity *int
	CurrentIsNA     bool
	DesiredMaturity *int
	DesiredIsNA     bool
	ComputedScore   *float64
	Comment         *string
	EvidenceLinks   []string
	ProgressState   domain.ProgressState
}

// Validate checks the input shape; the full entry invariants are checked
// by domain.AssessmentEntry.Validate before persistence.
func (i RecordRatingInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.ComputedScore != nil {
		if _, err := domain.ScoreFromFloat(*i.ComputedScore); err != nil {
			errs = append(errs, domain.FieldError{Field: "computed_score", Message: "must be between 0.00 and 5.00"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CombineSessionsInput holds the parameters for synthesizing a master session.
type CombineSessionsInput struct {
	SourceSessionIDs []uuid.UUID
	Name             string
	Assessor         *string
	Organization     *string
	Notes            *string
}

// Validate checks all fields and collects all errors.
func (i CombineSessionsInput) Validate() error {
	var errs []domain.FieldError

	if len(i.SourceSessionIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "source_session_ids", Message: "at least one source session is required"})
	}
	seen := map[uuid.UUID]bool{}
	for _, id := range i.SourceSessionIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "source_session_ids", Message: "must not contain a nil ID"})
			break
		}
		if seen[id] {
			errs = append(errs, domain.FieldError{Field: "source_session_ids", Message: "must not contain duplicates"})
			break
		}
		seen[id] = true
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSessionsFilter narrows ListSessions results.
type ListSessionsFilter struct {
	Assessor     *string
	Organization *string
}
