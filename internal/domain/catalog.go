package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dimension is a top-level category of the assessment catalog.
// Dimensions are created by catalog seeding and read-only afterwards
// except for descriptive fields.
type Dimension struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time

	Themes []Theme
}

// Theme groups topics within exactly one dimension.
type Theme struct {
	ID          uuid.UUID
	DimensionID uuid.UUID
	Name        string
	Description *string
	Category    *string
	CreatedAt   time.Time

	Topics        []Topic
	LevelGuidance []ThemeLevelGuidance
}

// ThemeLevelGuidance is an optional descriptive text for one rating
// level (1-5) of a theme. A theme has at most one record per level.
type ThemeLevelGuidance struct {
	ThemeID uuid.UUID
	Level   int
	Text    string
}

// Topic is the unit being rated.
type Topic struct {
	ID          uuid.UUID
	ThemeID     uuid.UUID
	Name        string
	Impact      *string
	Benefits    *string
	Basic       *string
	Advanced    *string
	Evidence    *string
	Regulations *string
	CreatedAt   time.Time

	Explanations []Explanation
}

// Explanation is a free-text guidance bullet for one rating level of a topic.
type Explanation struct {
	ID      uuid.UUID
	TopicID uuid.UUID
	Level   int
	Text    string
}

// RatingScaleLevel is one row of the fixed 5-level CMMI-style rating scale.
type RatingScaleLevel struct {
	Level       int
	Label       string
	Description *string
}

// DefaultRatingScale is the canonical 5-level scale seeded into new databases.
func DefaultRatingScale() []RatingScaleLevel {
	return []RatingScaleLevel{
		{Level: 1, Label: "Initial"},
		{Level: 2, Label: "Managed"},
		{Level: 3, Label: "Defined"},
		{Level: 4, Label: "Quantified"},
		{Level: 5, Label: "Optimised"},
	}
}
