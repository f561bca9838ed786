package catalog

import "slices"

// Catalog owns the loaded films and the character set derived from them.
// It is immutable once built and safe for concurrent readers.
type Catalog struct {
	films      []Film
	characters []string
}

// New builds a catalog from films. The films are copied; later changes to the
// argument do not affect the catalog.
func New(films []Film) *Catalog {
	owned := make([]Film, len(films))
	for i, f := range films {
		owned[i] = f.clone()
	}
	return &Catalog{
		films:      owned,
		characters: DeriveCharacters(owned),
	}
}

// Len returns the number of films.
func (c *Catalog) Len() int { return len(c.films) }

// Film returns the film at source position i.
func (c *Catalog) Film(i int) (Film, bool) {
	if i < 0 || i >= len(c.films) {
		return Film{}, false
	}
	return c.films[i].clone(), true
}

// Films returns a copy of all films in source order.
func (c *Catalog) Films() []Film {
	out := make([]Film, len(c.films))
	for i, f := range c.films {
		out[i] = f.clone()
	}
	return out
}

// Characters returns the sorted, duplicate-free character names.
func (c *Catalog) Characters() []string {
	return slices.Clone(c.characters)
}
