package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProgressState tracks how far an assessment entry has been worked through.
type ProgressState string

const (
	ProgressNotStarted ProgressState = "not_started"
	ProgressInProgress ProgressState = "in_progress"
	ProgressComplete   ProgressState = "complete"
)

func (p ProgressState) String() string { return string(p) }

func (p ProgressState) IsValid() bool {
	switch p {
	case ProgressNotStarted, ProgressInProgress, ProgressComplete:
		return true
	}
	return false
}

// AssessmentSession is one assessment run. It owns at most one entry per topic.
type AssessmentSession struct {
	ID           uuid.UUID
	Name         string
	Assessor     *string
	Organization *string
	Notes        *string
	CreatedAt    time.Time
}

// AssessmentEntry is the rating of one topic within one session.
//
// CurrentMaturity holds the ordinal rating chosen by the assessor;
// ComputedScore holds a decimal score derived by averaging (e.g. when
// sessions are combined) and, when present, takes precedence over
// CurrentMaturity everywhere scores are aggregated.
type AssessmentEntry struct {
	ID              uuid.UUID
	SessionID       uuid.UUID
	TopicID         uuid.UUID
	CurrentMaturity *int
	CurrentIsNA     bool
	DesiredMaturity *int
	DesiredIsNA     bool
	ComputedScore   *Score
	Comment         *string
	EvidenceLinks   []string
	ProgressState   ProgressState
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectiveScore returns the score used in all aggregation:
// nil for an N/A entry, the computed score when present, otherwise the
// current maturity widened to a Score (nil when that is unset too).
func (e *AssessmentEntry) EffectiveScore() *Score {
	if e.CurrentIsNA {
		return nil
	}
	if e.ComputedScore != nil {
		s := *e.ComputedScore
		return &s
	}
	if e.CurrentMaturity != nil {
		s := ScoreFromLevel(*e.CurrentMaturity)
		return &s
	}
	return nil
}

// Validate checks the entry invariants. It returns a *ValidationError
// listing every violated field, or nil when the entry is consistent.
// Validation happens before persistence; invalid entries are never coerced.
func (e *AssessmentEntry) Validate() error {
	var errs []FieldError

	if e.CurrentMaturity != nil && !ValidMaturityLevel(*e.CurrentMaturity) {
		errs = append(errs, FieldError{Field: "current_maturity", Message: "must be between 1 and 5"})
	}
	if e.DesiredMaturity != nil && !ValidMaturityLevel(*e.DesiredMaturity) {
		errs = append(errs, FieldError{Field: "desired_maturity", Message: "must be between 1 and 5"})
	}
	if e.ComputedScore != nil && !e.ComputedScore.IsValid() {
		errs = append(errs, FieldError{Field: "computed_score", Message: "must be between 0.00 and 5.00"})
	}
	if !e.ProgressState.IsValid() {
		errs = append(errs, FieldError{Field: "progress_state", Message: "must be one of not_started, in_progress, complete"})
	}

	if e.CurrentIsNA {
		// An N/A-now topic carries no scores and no tracked target.
		if e.CurrentMaturity != nil {
			errs = append(errs, FieldError{Field: "current_maturity", Message: "must be empty when the topic is marked not applicable"})
		}
		if e.ComputedScore != nil {
			errs = append(errs, FieldError{Field: "computed_score", Message: "must be empty when the topic is marked not applicable"})
		}
		if !e.DesiredIsNA {
			errs = append(errs, FieldError{Field: "desired_is_na", Message: "must be true when the topic is marked not applicable"})
		}
		if e.DesiredMaturity != nil {
			errs = append(errs, FieldError{Field: "desired_maturity", Message: "must be empty when the topic is marked not applicable"})
		}
	} else {
		if e.CurrentMaturity == nil && e.ComputedScore == nil {
			errs = append(errs, FieldError{Field: "current_maturity", Message: "either current_maturity or computed_score is required"})
		}
		if e.DesiredIsNA {
			errs = append(errs, FieldError{Field: "desired_is_na", Message: "must be false for an applicable topic"})
		} else if e.DesiredMaturity == nil {
			errs = append(errs, FieldError{Field: "desired_maturity", Message: "required for an applicable topic"})
		}
		if e.CurrentMaturity != nil && e.DesiredMaturity != nil && *e.DesiredMaturity < *e.CurrentMaturity {
			errs = append(errs, FieldError{Field: "desired_maturity", Message: "cannot be lower than current_maturity"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Assessor is an account allowed to record ratings.
type Assessor struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
