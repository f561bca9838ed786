package catalog

import "sort"

// DeriveCharacters returns the union of every film's character list,
// deduplicated and sorted byte-wise. The result is never nil.
func DeriveCharacters(films []Film) []string {
	seen := make(map[string]struct{})
	for _, f := range films {
		for _, name := range f.Characters {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
