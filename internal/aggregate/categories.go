package aggregate

import (
	"sort"

	"skillscope/internal/dataset"
	"skillscope/internal/taxonomy"
)

// memberIndexes resolves a category's skills against the schema, yielding
// positions into Posting.Skills. Skills absent from the input are filtered
// out; an empty result means the category is skipped.
func memberIndexes(schema dataset.Schema, cat taxonomy.Category) []int {
	var idx []int
	pos := make(map[string]int, len(schema.SkillColumns))
	for i, col := range schema.SkillColumns {
		pos[col] = i
	}
	for _, skill := range cat.Skills {
		if i, ok := pos[dataset.SkillPrefix+skill]; ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// mentionsCategory reports whether any of the posting's member skill flags is
// set. Logical OR: a posting with three member skills still counts once.
func mentionsCategory(p dataset.Posting, idx []int) bool {
	for _, i := range idx {
		if p.Skills[i] {
			return true
		}
	}
	return false
}

// SkillCategories rolls postings up to taxonomy categories, ordered by
// descending share. Categories with no member column in the input are
// omitted.
func SkillCategories(ds *dataset.Dataset) (Table, error) {
	total := len(ds.Postings)

	type catStat struct {
		name  string
		count int
		share float64
	}
	var stats []catStat
	for _, cat := range taxonomy.Categories {
		idx := memberIndexes(ds.Schema, cat)
		if len(idx) == 0 {
			continue
		}
		count := 0
		for _, p := range ds.Postings {
			if mentionsCategory(p, idx) {
				count++
			}
		}
		stats = append(stats, catStat{name: cat.Name, count: count, share: share(count, total)})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].share > stats[j].share })

	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{s.name, formatFloat(s.share), formatInt(s.count)})
	}

	return Table{
		Name:   "agg_skill_categories",
		Header: []string{"skill_category", "share", "count"},
		Rows:   rows,
	}, nil
}

// SkillCategoriesByExperience computes the category roll-up independently per
// experience group, long format. Groups appear in first-seen order; category
// presence is judged against the full schema, not the subset.
func SkillCategoriesByExperience(ds *dataset.Dataset) (Table, error) {
	var groups []string
	byGroup := make(map[string][]dataset.Posting)
	for _, p := range ds.Postings {
		if byGroup[p.ExperienceGroup] == nil {
			groups = append(groups, p.ExperienceGroup)
		}
		byGroup[p.ExperienceGroup] = append(byGroup[p.ExperienceGroup], p)
	}

	var rows [][]string
	for _, group := range groups {
		subset := byGroup[group]
		for _, cat := range taxonomy.Categories {
			idx := memberIndexes(ds.Schema, cat)
			if len(idx) == 0 {
				continue
			}
			count := 0
			for _, p := range subset {
				if mentionsCategory(p, idx) {
					count++
				}
			}
			rows = append(rows, []string{
				group,
				cat.Name,
				formatFloat(share(count, len(subset))),
			})
		}
	}

	return Table{
		Name:   "agg_skill_categories_by_experience",
		Header: []string{"experience_group", "skill_category", "share"},
		Rows:   rows,
	}, nil
}
