package character

// OrderSkills dedupes skills and orders them by their position in the skills
// catalog. Skills missing from the catalog follow in input order.
func OrderSkills(skills, catalog []string) []string {
	if len(skills) == 0 {
		return nil
	}

	selected := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s != "" {
			selected[s] = true
		}
	}

	out := make([]string, 0, len(selected))
	placed := make(map[string]bool, len(selected))
	for _, s := range catalog {
		if selected[s] && !placed[s] {
			out = append(out, s)
			placed[s] = true
		}
	}
	for _, s := range skills {
		if selected[s] && !placed[s] {
			out = append(out, s)
			placed[s] = true
		}
	}
	return out
}
