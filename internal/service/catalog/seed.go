package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

// SeedRecord is one catalog row parsed from CSV: a topic with its full
// dimension/theme path plus optional topic metadata.
type SeedRecord struct {
	Dimension string
	Theme     string
	Topic     domain.Topic
}

// SeedResult summarizes one seeding run.
type SeedResult struct {
	Dimensions int
	Themes     int
	Topics     int
}

// requiredColumns must be present in the CSV header, in any order and case.
var requiredColumns = []string{"dimension", "theme", "topic"}

// optional metadata columns, mapped onto domain.Topic fields.
var metadataColumns = []string{"impact", "benefits", "basic", "advanced", "evidence", "regulations"}

// ParseCSV reads catalog seed records. The first row is a header naming the
// columns; dimension, theme and topic are required on every record, metadata
// columns are optional. Fully blank rows are skipped.
func ParseCSV(r io.Reader) ([]SeedRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("csv", "file is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	colIndex := map[string]int{}
	for i, name := range header {
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, domain.NewValidationError("csv", fmt.Sprintf("missing required column %q", col))
		}
	}

	field := func(row []string, name string) string {
		idx, ok := colIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []SeedRecord
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		rec := SeedRecord{
			Dimension: field(row, "dimension"),
			Theme:     field(row, "theme"),
			Topic:     domain.Topic{Name: field(row, "topic")},
		}
		if rec.Dimension == "" || rec.Theme == "" || rec.Topic.Name == "" {
			return nil, domain.NewValidationError("csv",
				fmt.Sprintf("line %d: dimension, theme and topic are required", line))
		}

		for _, col := range metadataColumns {
			value := field(row, col)
			if value == "" {
				continue
			}
			v := value
			switch col {
			case "impact":
				rec.Topic.Impact = &v
			case "benefits":
				rec.Topic.Benefits = &v
			case "basic":
				rec.Topic.Basic = &v
			case "advanced":
				rec.Topic.Advanced = &v
			case "evidence":
				rec.Topic.Evidence = &v
			case "regulations":
				rec.Topic.Regulations = &v
			}
		}

		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, domain.NewValidationError("csv", "no records found")
	}

	return records, nil
}

// Seed writes the parsed records into the catalog, creating missing
// dimensions, themes and topics and leaving existing ones in place.
// The whole load runs in one transaction and also seeds the rating scale.
func (s *Service) Seed(ctx context.Context, records []SeedRecord) (SeedResult, error) {
	if len(records) == 0 {
		return SeedResult{}, domain.NewValidationError("records", "required")
	}

	var result SeedResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.catalog.EnsureRatingScale(txCtx, domain.DefaultRatingScale()); err != nil {
			return fmt.Errorf("ensure rating scale: %w", err)
		}

		dimensionIDs := map[string]uuid.UUID{}
		themeIDs := map[string]uuid.UUID{}

		for _, rec := range records {
			dimID, ok := dimensionIDs[rec.Dimension]
			if !ok {
				var err error
				dimID, err = s.catalog.EnsureDimension(txCtx, rec.Dimension)
				if err != nil {
					return fmt.Errorf("ensure dimension %q: %w", rec.Dimension, err)
				}
				dimensionIDs[rec.Dimension] = dimID
				result.Dimensions++
			}

			themeKey := rec.Dimension + "\x00" + rec.Theme
			themeID, ok := themeIDs[themeKey]
			if !ok {
				var err error
				themeID, err = s.catalog.EnsureTheme(txCtx, dimID, rec.Theme)
				if err != nil {
					return fmt.Errorf("ensure theme %q: %w", rec.Theme, err)
				}
				themeIDs[themeKey] = themeID
				result.Themes++
			}

			if _, err := s.catalog.EnsureTopic(txCtx, themeID, rec.Topic); err != nil {
				return fmt.Errorf("ensure topic %q: %w", rec.Topic.Name, err)
			}
			result.Topics++
		}

		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	s.log.InfoContext(ctx, "catalog seeded",
		slog.Int("dimensions", result.Dimensions),
		slog.Int("themes", result.Themes),
		slog.Int("topics", result.Topics),
	)

	return result, nil
}
