package catalog

import "slices"

// Entry is one film as it appears in a view.
type Entry struct {
	Index   int // position in the source dataset
	Film    Film
	Visible bool
}

// View holds the transient display state over a catalog: which films are
// visible and the order they are shown in. Filter and Sort are independent;
// each recomputes its own axis in full and leaves the other untouched.
// A View is not safe for concurrent use; build one per request.
type View struct {
	catalog  *Catalog
	selected string
	key      SortKey
	visible  []bool
	order    []int
}

// NewView returns an unfiltered view in source order.
func NewView(c *Catalog) *View {
	v := &View{catalog: c, selected: ShowAll}
	v.visible = Visibility(c.films, ShowAll)
	v.order = Order(c.films, SortNone)
	return v
}

// Filter shows only films whose character list contains selected.
// ShowAll or an empty string shows every film.
func (v *View) Filter(selected string) {
	if selected == "" {
		selected = ShowAll
	}
	v.selected = selected
	v.visible = Visibility(v.catalog.films, selected)
}

// Sort reorders the view by key. SortNone restores source order.
func (v *View) Sort(key SortKey) {
	v.key = key
	v.order = Order(v.catalog.films, key)
}

// Selected returns the active filter value.
func (v *View) Selected() string { return v.selected }

// SortKey returns the active sort key.
func (v *View) SortKey() SortKey { return v.key }

// Filtered reports whether a character filter is active.
func (v *View) Filtered() bool { return v.selected != ShowAll }

// Len returns the number of films in the view, visible or not.
func (v *View) Len() int { return len(v.order) }

// Visible returns the number of visible films.
func (v *View) Visible() int {
	n := 0
	for _, ok := range v.visible {
		if ok {
			n++
		}
	}
	return n
}

// IsVisible reports whether the film at source position i is visible.
func (v *View) IsVisible(i int) bool {
	return i >= 0 && i < len(v.visible) && v.visible[i]
}

// Order returns the display order as source indices.
func (v *View) Order() []int { return slices.Clone(v.order) }

// Entries returns every film in display order with its visibility.
// Hidden films are included.
func (v *View) Entries() []Entry {
	entries := make([]Entry, len(v.order))
	for pos, idx := range v.order {
		entries[pos] = Entry{
			Index:   idx,
			Film:    v.catalog.films[idx].clone(),
			Visible: v.visible[idx],
		}
	}
	return entries
}

// Query selects a filter value and a sort key.
type Query struct {
	Character string
	Sort      SortKey
}

// Query builds a fresh view with q applied.
func (c *Catalog) Query(q Query) *View {
	v := NewView(c)
	v.Filter(q.Character)
	v.Sort(q.Sort)
	return v
}
