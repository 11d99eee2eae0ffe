package aggregate

import (
	"fmt"
	"math"
	"sort"

	"skillscope/internal/dataset"
	"skillscope/internal/errors"
)

const (
	groupJunior  = "junior"
	groupMidPlus = "mid_plus"
)

// TopSkills ranks every skill column by total mentions. Ties keep schema
// column order.
func TopSkills(ds *dataset.Dataset) (Table, error) {
	total := len(ds.Postings)

	type skillCount struct {
		column string
		count  int
	}
	counts := make([]skillCount, len(ds.Schema.SkillColumns))
	for i, col := range ds.Schema.SkillColumns {
		counts[i].column = col
	}
	for _, p := range ds.Postings {
		for i, set := range p.Skills {
			if set {
				counts[i].count++
			}
		}
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].count > counts[j].count })

	rows := make([][]string, 0, len(counts))
	for _, sc := range counts {
		rows = append(rows, []string{
			sc.column,
			formatInt(sc.count),
			formatFloat(share(sc.count, total)),
			dataset.SkillName(sc.column),
		})
	}

	return Table{
		Name:   "agg_top_skills",
		Header: []string{"skill_name", "count", "share", "skill"},
		Rows:   rows,
	}, nil
}

// SkillsByCountry is the long-format skill × country cross-tabulation: the
// full cross product of skill columns and countries present in the data,
// zero-count pairs included. Shares are relative to the country's posting
// total.
func SkillsByCountry(ds *dataset.Dataset) (Table, error) {
	skills := ds.Schema.SkillColumns

	// First pass: per-country totals and per-skill counts.
	totals := make(map[string]int)
	counts := make(map[string][]int)
	for _, p := range ds.Postings {
		if counts[p.CountryName] == nil {
			counts[p.CountryName] = make([]int, len(skills))
		}
		totals[p.CountryName]++
		for i, set := range p.Skills {
			if set {
				counts[p.CountryName][i]++
			}
		}
	}

	countries := make([]string, 0, len(totals))
	for country := range totals {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	// Second pass: one row per (country, skill) pair.
	rows := make([][]string, 0, len(countries)*len(skills))
	for _, country := range countries {
		for i, col := range skills {
			count := counts[country][i]
			rows = append(rows, []string{
				col,
				country,
				formatInt(count),
				formatFloat(share(count, totals[country])),
				dataset.SkillName(col),
			})
		}
	}

	return Table{
		Name:   "agg_skills_by_country",
		Header: []string{"skill_name", "country_name", "count", "share", "skill"},
		Rows:   rows,
	}, nil
}

// skillSharesByGroup computes, for each experience group, the share of the
// group's postings mentioning each skill. Groups come back sorted.
func skillSharesByGroup(ds *dataset.Dataset) ([]string, map[string][]float64) {
	skills := ds.Schema.SkillColumns

	totals := make(map[string]int)
	counts := make(map[string][]int)
	for _, p := range ds.Postings {
		if counts[p.ExperienceGroup] == nil {
			counts[p.ExperienceGroup] = make([]int, len(skills))
		}
		totals[p.ExperienceGroup]++
		for i, set := range p.Skills {
			if set {
				counts[p.ExperienceGroup][i]++
			}
		}
	}

	groups := make([]string, 0, len(totals))
	shares := make(map[string][]float64, len(totals))
	for group := range totals {
		groups = append(groups, group)
		groupShares := make([]float64, len(skills))
		for i, count := range counts[group] {
			groupShares[i] = share(count, totals[group])
		}
		shares[group] = groupShares
	}
	sort.Strings(groups)
	return groups, shares
}

// SkillsByExperience is the long-format skill × experience-group table of
// within-group mention shares.
func SkillsByExperience(ds *dataset.Dataset) (Table, error) {
	groups, shares := skillSharesByGroup(ds)

	rows := make([][]string, 0, len(groups)*len(ds.Schema.SkillColumns))
	for _, group := range groups {
		for i, col := range ds.Schema.SkillColumns {
			rows = append(rows, []string{
				col,
				group,
				formatFloat(shares[group][i]),
				dataset.SkillName(col),
			})
		}
	}

	return Table{
		Name:   "agg_skills_by_experience",
		Header: []string{"skill_name", "experience_group", "share", "skill"},
		Rows:   rows,
	}, nil
}

// SkillsGap pivots the per-group shares into one row per skill with
// gap = mid_plus_share - junior_share, ordered by absolute gap descending.
// Only the junior and mid_plus labels are legal; anything else is a
// data-quality failure, not something to fold in silently. A dataset holding
// just one of the two labels is fine: the missing group's share is 0.
func SkillsGap(ds *dataset.Dataset) (Table, error) {
	groups, shares := skillSharesByGroup(ds)
	for _, group := range groups {
		if group != groupJunior && group != groupMidPlus {
			return Table{}, errors.SchemaViolation(
				fmt.Sprintf("unexpected experience group %q", group), nil)
		}
	}

	type gapRow struct {
		column  string
		junior  float64
		midPlus float64
		gap     float64
	}
	rows := make([]gapRow, len(ds.Schema.SkillColumns))
	for i, col := range ds.Schema.SkillColumns {
		row := gapRow{column: col}
		if s := shares[groupJunior]; s != nil {
			row.junior = s[i]
		}
		if s := shares[groupMidPlus]; s != nil {
			row.midPlus = s[i]
		}
		row.gap = row.midPlus - row.junior
		rows[i] = row
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return math.Abs(rows[i].gap) > math.Abs(rows[j].gap)
	})

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.column,
			formatFloat(r.junior),
			formatFloat(r.midPlus),
			formatFloat(r.gap),
			dataset.SkillName(r.column),
		})
	}

	return Table{
		Name:   "agg_skills_gap",
		Header: []string{"skill_name", "junior_share", "mid_plus_share", "gap", "skill"},
		Rows:   out,
	}, nil
}
