// Package gazetteer holds a static reference set of Spanish municipalities
// and a diacritic-insensitive ranked search over it, used to resolve a
// free-text city into a canonical name plus its INE code.
package gazetteer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Municipality is one immutable gazetteer record. Code is the 5-digit INE
// code: a 2-digit province prefix followed by a 3-digit local suffix.
type Municipality struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Province string `json:"province"`
}

// MinQueryLength is the shortest query Search responds to.
const MinQueryLength = 2

// DefaultMaxResults caps Search results when the caller passes no limit.
const DefaultMaxResults = 10

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases, strips diacritical marks and trims, so accented and
// unaccented spellings of the same name compare equal.
func Normalize(s string) string {
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		// the chain cannot fail on valid UTF-8; fall back to the raw input
		stripped = s
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}

// Search returns municipalities ranked by how their normalized name relates
// to the normalized query: exact matches first, then prefix matches, then
// substring matches. Within a tier the gazetteer's own order is kept. Queries
// shorter than MinQueryLength return nothing.
func Search(query string, maxResults int) []Municipality {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	q := Normalize(query)
	if len([]rune(q)) < MinQueryLength {
		return nil
	}

	var exact, prefix, contains []Municipality
	for _, m := range municipalities {
		name := Normalize(m.Name)
		switch {
		case name == q:
			exact = append(exact, m)
		case strings.HasPrefix(name, q):
			prefix = append(prefix, m)
		case strings.Contains(name, q):
			contains = append(contains, m)
		}
	}

	ranked := make([]Municipality, 0, len(exact)+len(prefix)+len(contains))
	ranked = append(ranked, exact...)
	ranked = append(ranked, prefix...)
	ranked = append(ranked, contains...)

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}

// FindByName returns the record whose normalized name equals the normalized
// input.
func FindByName(name string) (Municipality, bool) {
	q := Normalize(name)
	if q == "" {
		return Municipality{}, false
	}
	for _, m := range municipalities {
		if Normalize(m.Name) == q {
			return m, true
		}
	}
	return Municipality{}, false
}

// Reconcile resolves a city value that changed outside the normal input path
// (browser autofill tends to strip diacritics or alter capitalization). When
// the value matches a record, the caller should replace the displayed text
// with the canonical name and attach the code; when it does not, any
// previously associated code must be cleared.
func Reconcile(raw string) (Municipality, bool) {
	return FindByName(raw)
}
