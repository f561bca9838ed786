package catalog

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
const suggestThreshold = 0.70

// Suggest returns up to limit character names similar to query, best first.
// It is meant for filter values that match no film; it never changes a view.
func (c *Catalog) Suggest(query string, limit int) []string {
	folded := foldName(query)
	if folded == "" || limit <= 0 {
		return nil
	}

	type candidate struct {
		name  string
		score float64
	}
	var matches []candidate
	for _, name := range c.characters {
		if name == query {
			continue
		}
		score := float64(edlib.JaroWinklerSimilarity(folded, foldName(name)))
		if score >= suggestThreshold {
			matches = append(matches, candidate{name: name, score: score})
		}
	}

	// characters are already sorted, so equal scores stay alphabetical
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}

// foldName lowercases s, strips accents and punctuation, and collapses whitespace.
func foldName(s string) string {
	s = strings.ToLower(removeAccents(s))

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '.':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
