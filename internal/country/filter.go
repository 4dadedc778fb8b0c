package country

import "strings"

// Filter keeps countries whose name contains search (case-insensitive) and,
// when continent is non-empty, whose continent name equals it exactly.
// The input is never modified and order is preserved.
func Filter(countries []Country, search, continent string) []Country {
	needle := strings.ToLower(search)
	out := make([]Country, 0, len(countries))
	for _, c := range countries {
		if !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		if continent != "" && c.Continent.Name != continent {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Continents returns the distinct continent names present in countries,
// in first-seen order.
func Continents(countries []Country) []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range countries {
		if seen[c.Continent.Name] {
			continue
		}
		seen[c.Continent.Name] = true
		names = append(names, c.Continent.Name)
	}
	return names
}
