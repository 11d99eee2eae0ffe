package aggregate

import (
	"testing"
	"time"

	"skillscope/internal/dataset"
)

func TestFactRowConservation(t *testing.T) {
	ds := testDataset([]string{"skill_sql"}, []dataset.Posting{
		posting("US", "junior", true),
		posting("US", "mid_plus", false),
		posting("DE", "junior", true),
	})

	table, err := FactJobPostings(ds)
	if err != nil {
		t.Fatalf("FactJobPostings: %v", err)
	}
	if table.Name != "fact_job_postings" {
		t.Fatalf("table name: %q", table.Name)
	}
	if len(table.Rows) != len(ds.Postings) {
		t.Fatalf("row count: got %d want %d", len(table.Rows), len(ds.Postings))
	}
	if len(table.Header) != len(ds.Schema.FactColumns) {
		t.Fatalf("header: %v", table.Header)
	}
	if table.Rows[0][0] != "US" || table.Rows[0][1] != "junior" || table.Rows[0][2] != "1" {
		t.Fatalf("first row: %v", table.Rows[0])
	}
}

func TestFactValueFormatting(t *testing.T) {
	p := dataset.Posting{
		ID:          "42",
		IsRemote:    true,
		PostedAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		SkillsCount: 3,
	}
	if got := factValue(p, "id"); got != "42" {
		t.Fatalf("id: %q", got)
	}
	if got := factValue(p, "is_remote"); got != "true" {
		t.Fatalf("is_remote: %q", got)
	}
	if got := factValue(p, "skills_count"); got != "3" {
		t.Fatalf("skills_count: %q", got)
	}
	if got := factValue(p, "posted_at_datetime_utc"); got != "2024-05-01T10:00:00Z" {
		t.Fatalf("posted_at: %q", got)
	}
	if got := factValue(dataset.Posting{}, "posted_at_datetime_utc"); got != "" {
		t.Fatalf("zero timestamp should render empty, got %q", got)
	}
}
