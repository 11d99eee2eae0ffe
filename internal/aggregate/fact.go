package aggregate

import (
	"time"

	"skillscope/internal/dataset"
)

// FactJobPostings projects each posting onto the fact columns present in the
// input. No aggregation: output row count equals input row count.
func FactJobPostings(ds *dataset.Dataset) (Table, error) {
	rows := make([][]string, 0, len(ds.Postings))
	for _, p := range ds.Postings {
		row := make([]string, 0, len(ds.Schema.FactColumns))
		for _, col := range ds.Schema.FactColumns {
			row = append(row, factValue(p, col))
		}
		rows = append(rows, row)
	}

	return Table{
		Name:   "fact_job_postings",
		Header: ds.Schema.FactColumns,
		Rows:   rows,
	}, nil
}

func factValue(p dataset.Posting, col string) string {
	switch col {
	case "id":
		return p.ID
	case "title":
		return p.Title
	case "country_name":
		return p.CountryName
	case "country_code":
		return p.CountryCode
	case "experience_group":
		return p.ExperienceGroup
	case "is_remote":
		return formatBool(p.IsRemote)
	case "is_full_time":
		return formatBool(p.IsFullTime)
	case "is_part_time":
		return formatBool(p.IsPartTime)
	case "is_contractor":
		return formatBool(p.IsContractor)
	case "is_internship":
		return formatBool(p.IsInternship)
	case "skills_count":
		return formatInt(p.SkillsCount)
	case "posted_at_datetime_utc":
		if p.PostedAt.IsZero() {
			return ""
		}
		return p.PostedAt.UTC().Format(time.RFC3339)
	}
	return ""
}
