package aggregate

import (
	"strconv"
	"testing"

	"skillscope/internal/dataset"
)

func testDataset(skillColumns []string, postings []dataset.Posting) *dataset.Dataset {
	return &dataset.Dataset{
		Schema: dataset.Schema{
			SkillColumns: skillColumns,
			FactColumns:  []string{"country_name", "experience_group", "skills_count"},
		},
		Postings: postings,
	}
}

func posting(country, group string, skills ...bool) dataset.Posting {
	count := 0
	for _, s := range skills {
		if s {
			count++
		}
	}
	return dataset.Posting{
		CountryName:     country,
		ExperienceGroup: group,
		Skills:          skills,
		SkillsCount:     count,
	}
}

func parseFloatCell(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("parse float cell %q: %v", s, err)
	}
	return v
}

func shareSum(t *testing.T, table Table, shareCol int) float64 {
	t.Helper()
	sum := 0.0
	for _, row := range table.Rows {
		sum += parseFloatCell(t, row[shareCol])
	}
	return sum
}

func TestShareZeroTotal(t *testing.T) {
	if got := share(0, 0); got != 0 {
		t.Fatalf("share(0,0): got %v want 0", got)
	}
	if got := share(3, 0); got != 0 {
		t.Fatalf("share(3,0): got %v want 0", got)
	}
	if got := share(1, 4); got != 25 {
		t.Fatalf("share(1,4): got %v want 25", got)
	}
}

func TestCountryDistribution(t *testing.T) {
	ds := testDataset([]string{"skill_sql"}, []dataset.Posting{
		posting("US", "junior", true),
		posting("US", "mid_plus", true),
		posting("DE", "junior", false),
	})

	table, err := Country(ds)
	if err != nil {
		t.Fatalf("Country: %v", err)
	}
	if table.Name != "agg_country" {
		t.Fatalf("table name: %q", table.Name)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][0] != "US" || table.Rows[0][1] != "2" {
		t.Fatalf("first row: %v", table.Rows[0])
	}
	if table.Rows[1][0] != "DE" || table.Rows[1][1] != "1" {
		t.Fatalf("second row: %v", table.Rows[1])
	}
	if got := parseFloatCell(t, table.Rows[0][2]); got < 66.6 || got > 66.7 {
		t.Fatalf("US share: %v", got)
	}
	if sum := shareSum(t, table, 2); sum < 99.999999 || sum > 100.000001 {
		t.Fatalf("shares sum to %v, want 100", sum)
	}
}

func TestDistributionTieBreakFirstSeen(t *testing.T) {
	ds := testDataset([]string{"skill_sql"}, []dataset.Posting{
		posting("DE", "junior", false),
		posting("US", "junior", false),
		posting("US", "junior", false),
		posting("DE", "junior", false),
		posting("FR", "junior", false),
		posting("FR", "junior", false),
	})

	table, err := Country(ds)
	if err != nil {
		t.Fatalf("Country: %v", err)
	}
	want := []string{"DE", "US", "FR"}
	for i, country := range want {
		if table.Rows[i][0] != country {
			t.Fatalf("row %d: got %q want %q", i, table.Rows[i][0], country)
		}
	}
}

func TestExperienceDistribution(t *testing.T) {
	ds := testDataset([]string{"skill_sql"}, []dataset.Posting{
		posting("US", "junior", true),
		posting("US", "mid_plus", true),
		posting("DE", "mid_plus", false),
	})

	table, err := Experience(ds)
	if err != nil {
		t.Fatalf("Experience: %v", err)
	}
	if table.Rows[0][0] != "mid_plus" || table.Rows[0][1] != "2" {
		t.Fatalf("first row: %v", table.Rows[0])
	}
	if sum := shareSum(t, table, 2); sum < 99.999999 || sum > 100.000001 {
		t.Fatalf("shares sum to %v, want 100", sum)
	}
}

func TestRemoteDistribution(t *testing.T) {
	remote := posting("US", "junior", false)
	remote.IsRemote = true
	ds := testDataset([]string{"skill_sql"}, []dataset.Posting{
		remote,
		posting("US", "junior", false),
		posting("US", "junior", false),
	})

	table, err := Remote(ds)
	if err != nil {
		t.Fatalf("Remote: %v", err)
	}
	if table.Rows[0][0] != "false" || table.Rows[0][1] != "2" {
		t.Fatalf("first row: %v", table.Rows[0])
	}
	if table.Rows[1][0] != "true" || table.Rows[1][1] != "1" {
		t.Fatalf("second row: %v", table.Rows[1])
	}
}

func TestDistributionEmptyInput(t *testing.T) {
	ds := testDataset([]string{"skill_sql"}, nil)
	table, err := Country(ds)
	if err != nil {
		t.Fatalf("Country: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(table.Rows))
	}
}
