package dataset

import (
	"strings"
	"time"
)

// SkillPrefix marks the boolean skill-flag columns of the input. The set of
// skills is discovered from the header at load time, never hardcoded.
const SkillPrefix = "skill_"

// Canonical fact-table projection, in output order. Columns absent from the
// input are filtered out, not errors.
var factColumnOrder = []string{
	"id", "title", "country_name", "country_code", "experience_group",
	"is_remote", "is_full_time", "is_part_time", "is_contractor", "is_internship",
	"skills_count", "posted_at_datetime_utc",
}

// Required by every aggregation; their absence is a fatal schema violation.
var requiredColumns = []string{"country_name", "experience_group"}

// Schema is the result of the one-time header introspection pass. It is
// immutable after load and shared by all aggregations.
type Schema struct {
	SkillColumns []string
	FactColumns  []string
	columns      map[string]bool
}

func (s Schema) Has(col string) bool {
	return s.columns[col]
}

// SkillName strips the skill column prefix to produce a display name.
func SkillName(col string) string {
	return strings.TrimPrefix(col, SkillPrefix)
}

type Posting struct {
	ID              string
	Title           string
	CountryName     string
	CountryCode     string
	ExperienceGroup string
	IsRemote        bool
	IsFullTime      bool
	IsPartTime      bool
	IsContractor    bool
	IsInternship    bool
	PostedAt        time.Time

	// Skills is parallel to Schema.SkillColumns.
	Skills      []bool
	SkillsCount int
}

// Dataset is the immutable input snapshot every derived table is computed from.
type Dataset struct {
	Schema   Schema
	Postings []Posting
}
