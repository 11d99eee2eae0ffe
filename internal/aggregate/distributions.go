package aggregate

import (
	"sort"

	"skillscope/internal/dataset"
)

type valueCount struct {
	value string
	count int
}

// valueCounts tallies distinct values, ordered by descending count with
// first-seen order breaking ties.
func valueCounts(values []string) []valueCount {
	counts := make(map[string]int, len(values))
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	rows := make([]valueCount, 0, len(order))
	for _, v := range order {
		rows = append(rows, valueCount{value: v, count: counts[v]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].count > rows[j].count })
	return rows
}

func distribution(name, column string, values []string) Table {
	total := len(values)
	rows := make([][]string, 0, total)
	for _, vc := range valueCounts(values) {
		rows = append(rows, []string{
			vc.value,
			formatInt(vc.count),
			formatFloat(share(vc.count, total)),
		})
	}
	return Table{Name: name, Header: []string{column, "count", "share"}, Rows: rows}
}

// Country is the posting distribution over countries.
func Country(ds *dataset.Dataset) (Table, error) {
	values := make([]string, 0, len(ds.Postings))
	for _, p := range ds.Postings {
		values = append(values, p.CountryName)
	}
	return distribution("agg_country", "country_name", values), nil
}

// Experience is the posting distribution over experience groups.
func Experience(ds *dataset.Dataset) (Table, error) {
	values := make([]string, 0, len(ds.Postings))
	for _, p := range ds.Postings {
		values = append(values, p.ExperienceGroup)
	}
	return distribution("agg_experience", "experience_group", values), nil
}

// Remote is the remote vs on-site distribution.
func Remote(ds *dataset.Dataset) (Table, error) {
	values := make([]string, 0, len(ds.Postings))
	for _, p := range ds.Postings {
		values = append(values, formatBool(p.IsRemote))
	}
	return distribution("agg_remote", "is_remote", values), nil
}
