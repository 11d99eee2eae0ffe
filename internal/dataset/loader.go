package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"skillscope/internal/errors"
	"skillscope/internal/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("skillscope/dataset")

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type Loader struct {
	logger *zap.Logger
	comma  rune
}

func NewLoader(logger *zap.Logger, comma rune) *Loader {
	return &Loader{logger: logger, comma: comma}
}

// Load reads the cleaned postings CSV, introspects its schema and returns the
// fully typed dataset. Any missing required column, unparseable flag or
// unparseable timestamp aborts the load.
func (l *Loader) Load(ctx context.Context, path string) (*Dataset, error) {
	_, span := tracer.Start(ctx, "Load")
	defer span.End()

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.InputNotFound(fmt.Sprintf("opening input %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = l.comma

	header, err := reader.Read()
	if err != nil {
		return nil, errors.SchemaViolation("reading input header", err)
	}

	schema, index, err := introspectSchema(header)
	if err != nil {
		return nil, err
	}

	var postings []Posting
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.SchemaViolation(fmt.Sprintf("reading input line %d", line), err)
		}

		posting, err := parsePosting(record, schema, index, line)
		if err != nil {
			return nil, err
		}
		postings = append(postings, posting)
	}

	span.SetAttributes(
		telemetry.Int("dataset.rows", len(postings)),
		telemetry.Int("dataset.skill_columns", len(schema.SkillColumns)),
	)
	l.logger.Info("loaded dataset",
		zap.String("path", path),
		zap.Int("rows", len(postings)),
		zap.Int("skill_columns", len(schema.SkillColumns)))

	return &Dataset{Schema: schema, Postings: postings}, nil
}

func introspectSchema(header []string) (Schema, map[string]int, error) {
	index := make(map[string]int, len(header))
	columns := make(map[string]bool, len(header))
	var skillColumns []string

	for i, col := range header {
		col = strings.TrimSpace(col)
		if _, dup := index[col]; dup {
			return Schema{}, nil, errors.SchemaViolation(fmt.Sprintf("duplicate column %q", col), nil)
		}
		index[col] = i
		columns[col] = true
		if strings.HasPrefix(col, SkillPrefix) {
			skillColumns = append(skillColumns, col)
		}
	}

	for _, col := range requiredColumns {
		if !columns[col] {
			return Schema{}, nil, errors.SchemaViolation(fmt.Sprintf("required column %q missing", col), nil)
		}
	}
	if len(skillColumns) == 0 {
		return Schema{}, nil, errors.SchemaViolation(
			fmt.Sprintf("no %s columns found in input header", SkillPrefix), nil)
	}

	// skills_count is derived at load time, so it always survives the
	// fact-column filter.
	var factColumns []string
	for _, col := range factColumnOrder {
		if columns[col] || col == "skills_count" {
			factColumns = append(factColumns, col)
		}
	}

	return Schema{
		SkillColumns: skillColumns,
		FactColumns:  factColumns,
		columns:      columns,
	}, index, nil
}

func parsePosting(record []string, schema Schema, index map[string]int, line int) (Posting, error) {
	field := func(col string) string {
		if i, ok := index[col]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	posting := Posting{
		ID:              field("id"),
		Title:           field("title"),
		CountryName:     field("country_name"),
		CountryCode:     field("country_code"),
		ExperienceGroup: field("experience_group"),
	}

	boolFields := []struct {
		col string
		dst *bool
	}{
		{"is_remote", &posting.IsRemote},
		{"is_full_time", &posting.IsFullTime},
		{"is_part_time", &posting.IsPartTime},
		{"is_contractor", &posting.IsContractor},
		{"is_internship", &posting.IsInternship},
	}
	for _, bf := range boolFields {
		if !schema.Has(bf.col) {
			continue
		}
		value, err := parseBool(field(bf.col))
		if err != nil {
			return Posting{}, errors.SchemaViolation(
				fmt.Sprintf("column %q line %d", bf.col, line), err)
		}
		*bf.dst = value
	}

	if schema.Has("posted_at_datetime_utc") {
		ts, err := parseTimestamp(field("posted_at_datetime_utc"))
		if err != nil {
			return Posting{}, errors.SchemaViolation(
				fmt.Sprintf("column %q line %d", "posted_at_datetime_utc", line), err)
		}
		posting.PostedAt = ts
	}

	posting.Skills = make([]bool, len(schema.SkillColumns))
	for i, col := range schema.SkillColumns {
		value, err := parseBool(field(col))
		if err != nil {
			return Posting{}, errors.SchemaViolation(
				fmt.Sprintf("column %q line %d", col, line), err)
		}
		posting.Skills[i] = value
		if value {
			posting.SkillsCount++
		}
	}

	return posting, nil
}

func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "True", "TRUE", "1":
		return true, nil
	case "false", "False", "FALSE", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("unparseable boolean %q", s)
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
