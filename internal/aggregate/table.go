// Package aggregate computes the twelve derived tables consumed by the
// dashboard. Every builder is a pure function of the immutable dataset
// snapshot and the static skill taxonomy; no table depends on another.
package aggregate

import (
	"strconv"

	"skillscope/internal/dataset"
)

// Table is a derived table ready for the output sink.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Builder is the uniform shape of the twelve table constructors.
type Builder func(*dataset.Dataset) (Table, error)

// All returns the twelve builders in reference output order.
func All() []Builder {
	return []Builder{
		FactJobPostings,
		Country,
		Experience,
		Remote,
		TopSkills,
		SkillsByCountry,
		SkillsByExperience,
		SkillsGap,
		SkillCategories,
		SkillCategoriesByExperience,
		SkillsCountDist,
		SkillsCountByExperience,
	}
}

// share expresses count as a percentage of total. A zero total yields 0, the
// guarded resolution for empty buckets.
func share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}
