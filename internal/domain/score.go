package domain

import (
	"fmt"
	"math"
)

// Maturity level bounds of the 5-level rating scale.
const (
	MinMaturityLevel = 1
	MaxMaturityLevel = 5
)

// Score is a fixed-point maturity score in hundredths of a level,
// range [0.00, 5.00]. It is used wherever a score may carry decimal
// precision (entries derived by averaging), so that repeated averaging
// does not accumulate binary floating-point drift.
type Score int32

// Score bounds in hundredths.
const (
	MinScore Score = 0
	MaxScore Score = 5 * 100
)

// ScoreFromFloat converts a float to a Score, rounding half-up to two
// decimal places. Returns an error if the rounded value falls outside
// [0.00, 5.00] or the input is not a finite number.
func ScoreFromFloat(f float64) (Score, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, NewValidationError("computed_score", "must be a finite number")
	}
	s := Score(math.Round(f * 100))
	if s < MinScore || s > MaxScore {
		return 0, NewValidationError("computed_score", fmt.Sprintf("must be between 0.00 and 5.00 (got %v)", f))
	}
	return s, nil
}

// ScoreFromLevel widens an ordinal maturity level to a Score.
func ScoreFromLevel(level int) Score {
	return Score(level * 100)
}

// Float64 returns the score as a float (e.g. 4.25).
func (s Score) Float64() float64 {
	return float64(s) / 100
}

// Level rounds the score half-up to the nearest ordinal maturity level,
// clamped into [1, 5].
func (s Score) Level() int {
	level := int(math.Round(s.Float64()))
	if level < MinMaturityLevel {
		return MinMaturityLevel
	}
	if level > MaxMaturityLevel {
		return MaxMaturityLevel
	}
	return level
}

// IsValid reports whether the score is within [0.00, 5.00].
func (s Score) IsValid() bool {
	return s >= MinScore && s <= MaxScore
}

// String formats the score with two decimal places, e.g. "4.25".
func (s Score) String() string {
	return fmt.Sprintf("%d.%02d", s/100, s%100)
}

// ValidMaturityLevel reports whether level is within the rating scale.
func ValidMaturityLevel(level int) bool {
	return level >= MinMaturityLevel && level <= MaxMaturityLevel
}
