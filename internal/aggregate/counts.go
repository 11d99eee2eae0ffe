package aggregate

import (
	"sort"

	"skillscope/internal/dataset"
)

// SkillsCountDist is the histogram source over per-posting skill counts.
// Rows are ordered by ascending skills_count, which the chart rendering
// relies on.
func SkillsCountDist(ds *dataset.Dataset) (Table, error) {
	total := len(ds.Postings)

	counts := make(map[int]int)
	for _, p := range ds.Postings {
		counts[p.SkillsCount]++
	}
	values := make([]int, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Ints(values)

	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{
			formatInt(v),
			formatInt(counts[v]),
			formatFloat(share(counts[v], total)),
		})
	}

	return Table{
		Name:   "agg_skills_count_dist",
		Header: []string{"skills_count", "count", "share"},
		Rows:   rows,
	}, nil
}

// SkillsCountByExperience summarizes skills_count per experience group:
// count, mean, median, min, max. Groups with no postings do not appear.
func SkillsCountByExperience(ds *dataset.Dataset) (Table, error) {
	byGroup := make(map[string][]int)
	for _, p := range ds.Postings {
		byGroup[p.ExperienceGroup] = append(byGroup[p.ExperienceGroup], p.SkillsCount)
	}
	groups := make([]string, 0, len(byGroup))
	for group := range byGroup {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		values := byGroup[group]
		rows = append(rows, []string{
			group,
			formatInt(len(values)),
			formatFloat(mean(values)),
			formatFloat(median(values)),
			formatInt(minInt(values)),
			formatInt(maxInt(values)),
		})
	}

	return Table{
		Name:   "agg_skills_count_by_experience",
		Header: []string{"experience_group", "count", "mean", "median", "min", "max"},
		Rows:   rows,
	}, nil
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

func minInt(values []int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxInt(values []int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
