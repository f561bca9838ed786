package catalog

// ShowAll is the filter value that disables character filtering.
// It shares the namespace of character names, so a character literally named
// "all" cannot be selected on its own; selecting it shows every film.
const ShowAll = "all"

// Visibility computes a visibility flag for every film. A film is visible when
// selected is ShowAll (or empty) or its character list contains selected.
func Visibility(films []Film, selected string) []bool {
	visible := make([]bool, len(films))
	all := selected == "" || selected == ShowAll
	for i, f := range films {
		visible[i] = all || f.HasCharacter(selected)
	}
	return visible
}
