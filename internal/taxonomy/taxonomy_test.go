package taxonomy

import "testing"

func TestCategoriesWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, cat := range Categories {
		if cat.Name == "" {
			t.Fatalf("category with empty name")
		}
		if seen[cat.Name] {
			t.Fatalf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
		if len(cat.Skills) == 0 {
			t.Fatalf("category %q has no skills", cat.Name)
		}
		for _, skill := range cat.Skills {
			if skill == "" {
				t.Fatalf("category %q has an empty skill", cat.Name)
			}
		}
	}
}

func TestProgrammingCategory(t *testing.T) {
	for _, cat := range Categories {
		if cat.Name != "Programming" {
			continue
		}
		want := []string{"sql", "python", "r"}
		if len(cat.Skills) != len(want) {
			t.Fatalf("Programming skills: %v", cat.Skills)
		}
		for i, skill := range want {
			if cat.Skills[i] != skill {
				t.Fatalf("Programming skill %d: got %q want %q", i, cat.Skills[i], skill)
			}
		}
		return
	}
	t.Fatalf("Programming category missing")
}
