// Package catalog loads the film dataset and computes filtered, sorted views of it.
package catalog

import "slices"

// Film is a single catalog record.
// Films carry no ID; a film is identified by its position in the source dataset.
type Film struct {
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	Directors  []string `json:"directors"`
	Characters []string `json:"characters"`
	Image      string   `json:"image"`
}

// HasCharacter reports whether name appears in the film's character list.
// The comparison is exact and case-sensitive.
func (f Film) HasCharacter(name string) bool {
	return slices.Contains(f.Characters, name)
}

func (f Film) clone() Film {
	f.Directors = slices.Clone(f.Directors)
	f.Characters = slices.Clone(f.Characters)
	return f
}
